package loaders

import (
	"regexp"

	semVer "github.com/hashicorp/go-version"
)

var versionRe = regexp.MustCompile(`^[0-9.]+$`)

// MinVanillaVersion is the oldest Minecraft release the vanilla strategy
// supports; the remote server artifact layout before it is structurally
// different.
const MinVanillaVersion = "1.2.5"

// ValidateVersion accepts an empty request (latest) or a dotted numeric
// version string. Anything else short-circuits the run before the index is
// ever fetched.
func ValidateVersion(request string) error {
	if request == "" {
		return nil
	}
	if !versionRe.MatchString(request) {
		return &InvalidInputError{Input: request, Reason: "only digits and dots are allowed"}
	}
	return nil
}

// checkVanillaFloor rejects explicit requests below MinVanillaVersion.
func checkVanillaFloor(request string) error {
	if request == "" {
		return nil
	}
	requested, err := semVer.NewVersion(request)
	if err != nil {
		return &InvalidInputError{Input: request, Reason: err.Error()}
	}
	if requested.LessThan(semVer.Must(semVer.NewVersion(MinVanillaVersion))) {
		return &InvalidInputError{Input: request, Reason: "versions before " + MinVanillaVersion + " are unsupported"}
	}
	return nil
}
