package structs

// Descriptor is the normalized result of a loader acquisition. It is the only
// thing the post-install steps (start command, launch scripts, MCDR config)
// know about; loader-specific detail never leaks past it.
type Descriptor struct {
	// Name is the runnable server artifact without its .jar extension.
	// Empty when the loader produces no flat jar (see LaunchHint).
	Name string `json:"name"`
	// ExternalLauncher is set when the loader's post-install layout no longer
	// launches via a plain `java -jar` (modern Forge).
	ExternalLauncher bool `json:"externalLauncher"`
	// LaunchHint points at the run script the loader generated, relative to
	// the install dir. Only set when ExternalLauncher is true.
	LaunchHint string `json:"launchHint,omitempty"`
	// McVersion is the concrete Minecraft version the artifact targets, when
	// the loader knows it (empty for installer-chosen latest).
	McVersion string `json:"mcVersion,omitempty"`
}

// StartJar returns the jar filename the start command should reference.
func (d Descriptor) StartJar() string {
	return d.Name + ".jar"
}
