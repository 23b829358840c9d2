package structs

// Manifest is the install record written into the server folder once a run
// completes, so a later run (or a human) can tell what lives there.
type Manifest struct {
	Loader     string     `json:"loader"`
	Mcdr       bool       `json:"mcdr"`
	Descriptor Descriptor `json:"descriptor"`
	StartCmd   string     `json:"startCommand"`
}
