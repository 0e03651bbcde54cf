package models

// ChatTurn is one entry of the conversation the client replays on every
// request; the server keeps no session state.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)
