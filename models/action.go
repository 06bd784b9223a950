package models

// Action is an entry of the approved-actions allow-list.
type Action struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	SHA     string `json:"sha"`
}

func (a Action) Equal(other Action) bool {
	return a.Name == other.Name && a.Version == other.Version && a.SHA == other.SHA
}

type ActionChangeStatus string

const (
	ActionAdded   ActionChangeStatus = "added"
	ActionChanged ActionChangeStatus = "changed"
	ActionOK      ActionChangeStatus = "ok"
	ActionRemoved ActionChangeStatus = "removed"
	ActionSkipped ActionChangeStatus = "skipped"
)

// ActionChange describes what allow-list maintenance did to one action.
type ActionChange struct {
	Before Action
	After  Action
	Status ActionChangeStatus
	Reason string // e.g. rate limited, repository not found
}
