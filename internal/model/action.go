package model

//ActionKind is a kind of mutating action performed on the destination tree.
type ActionKind string

const (
	ActionCopy  ActionKind = "copy"
	ActionMkdir ActionKind = "mkdir"
)

//Action is a progress record: one line is printed for every action taken during sync.
type Action struct {
	Kind ActionKind `json:"kind"`
	Src  string     `json:"src,omitempty"`
	Dest string     `json:"dest"`
}

func NewCopyAction(src, dest string) Action {
	return Action{Kind: ActionCopy, Src: src, Dest: dest}
}

func NewMkdirAction(dest string) Action {
	return Action{Kind: ActionMkdir, Dest: dest}
}

//String renders the action as a progress line.
func (a Action) String() string {
	if a.Kind == ActionMkdir {
		return "mkdir " + a.Dest
	}
	return a.Src + " -> " + a.Dest
}
