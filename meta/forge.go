package meta

import (
	"fmt"
	"strings"
)

// ForgePromotions mirrors promotions_slim.json: a map keyed
// "<mcVersion>-latest" / "<mcVersion>-recommended" to a Forge version.
type ForgePromotions struct {
	Promos map[string]string `json:"promos"`
}

func (c *Client) GetForgePromotions() (ForgePromotions, error) {
	var promos ForgePromotions
	if err := c.getJSON(ForgePromosURL, &promos); err != nil {
		return ForgePromotions{}, err
	}
	return promos, nil
}

// Select matches mcVersion against the promotion keys, stripping the
// -latest/-recommended suffixes, then re-applies the caller's channel choice.
// The result is the full build id "<mcVersion>-<forgeVersion>".
func (p ForgePromotions) Select(mcVersion string, latest bool) (string, bool) {
	channel := "-recommended"
	if latest {
		channel = "-latest"
	}
	for key := range p.Promos {
		mc := strings.TrimSuffix(strings.TrimSuffix(key, "-latest"), "-recommended")
		if mc != mcVersion {
			continue
		}
		forgeVersion, ok := p.Promos[mc+channel]
		if !ok {
			continue
		}
		return fmt.Sprintf("%s-%s", mc, forgeVersion), true
	}
	return "", false
}

// McVersions lists the Minecraft versions present in the promotion map, in no
// particular order.
func (p ForgePromotions) McVersions() []string {
	seen := map[string]struct{}{}
	var versions []string
	for key := range p.Promos {
		mc := strings.TrimSuffix(strings.TrimSuffix(key, "-latest"), "-recommended")
		if _, ok := seen[mc]; ok {
			continue
		}
		seen[mc] = struct{}{}
		versions = append(versions, mc)
	}
	return versions
}

// ForgeInstallerURL is the maven path of a build's server installer.
func ForgeInstallerURL(build string) string {
	return fmt.Sprintf("%s/%s/forge-%s-installer.jar", ForgeMavenURL, build, build)
}
