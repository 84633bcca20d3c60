package run

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errSync = errors.New("cannot copy file")

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr error
		wantMsg string
	}{
		{name: "no err", fn: func() error { return nil }},
		{name: "returned err", fn: func() error { return errSync }, wantErr: errSync},
		{name: "panic with err", fn: func() error { panic(errSync) }, wantErr: errSync},
		{name: "panic with text", fn: func() error { panic("boom") }, wantMsg: "panic: boom"},
		{name: "panic with value", fn: func() error { panic(42) }, wantMsg: "panic: 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)

			var err error
			requires.NotPanics(func() {
				err = WithError(tt.fn)
			})

			switch {
			case tt.wantErr != nil:
				requires.ErrorIs(err, tt.wantErr)
			case tt.wantMsg != "":
				requires.EqualError(err, tt.wantMsg)
			default:
				requires.NoError(err)
			}
		})
	}
}

//The CLI may stop waiting on the channel and come back to it later, so the result must stay buffered.
func TestAsyncWithErrorDeliversOnce(t *testing.T) {
	requires := require.New(t)
	release := make(chan struct{})
	errCh := AsyncWithError(func() error {
		<-release
		panic(errSync)
	})

	select {
	case <-errCh:
		requires.Fail("result delivered before the function finished")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)

	var err error
	requires.Eventually(func() bool {
		select {
		case err = <-errCh:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	requires.ErrorIs(err, errSync)

	select {
	case extra, ok := <-errCh:
		requires.Failf("unexpected second value", "got %v (open: %v)", extra, ok)
	case <-time.After(20 * time.Millisecond):
	}
}
