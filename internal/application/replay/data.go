package replay

// TickInput records input state for a single tick
type TickInput struct {
	T  int  `json:"t"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
	RS bool `json:"rs,omitempty"` // Respawn
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string      `json:"version"`
	Stage     string      `json:"stage"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
	Digest    uint64      `json:"digest,string"` // state digest after the last tick
}
