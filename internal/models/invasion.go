package models

import (
	"fmt"
	"strings"
)

// FactionInfested marks invasions with no meaningful defending side to
// display.
const FactionInfested = "Infestation"

// creditsMarker flags reward strings that are plain credit payouts,
// e.g. "25000cr".
const creditsMarker = "cr"

// InvasionSide is one faction's half of an invasion.
type InvasionSide struct {
	Faction     string
	MissionType string
	Reward      string
	MinLevel    int
	MaxLevel    int
}

// Invasion is one active faction invasion.
type Invasion struct {
	ID          string
	Node        string
	Planet      string
	Invader     InvasionSide
	Defender    InvasionSide
	Completion  float64
	ETA         string
	Description string
}

// Render formats the invasion for chat. Infested attackers get the
// single-sided template; everything else shows both factions.
func (i Invasion) Render() string {
	if i.Invader.Faction == FactionInfested {
		return fmt.Sprintf("**%s (%s)**\n%s (%s)\n*%.2f%% - %s*",
			i.Node, i.Planet, i.Description, i.Invader.Reward,
			i.Completion, i.ETA)
	}
	return fmt.Sprintf("**%s (%s) - %s**\n%s (%s) vs.\n%s (%s)\n*%.2f%% - %s*",
		i.Node, i.Planet, i.Description,
		i.Invader.Faction, i.Invader.MissionType,
		i.Defender.Faction, i.Defender.MissionType,
		i.Completion, i.ETA)
}

// Rewards returns the rewards from both sides, skipping plain credit
// payouts.
func (i Invasion) Rewards() []string {
	rewards := make([]string, 0, 2)
	for _, r := range []string{i.Invader.Reward, i.Defender.Reward} {
		if !strings.Contains(r, creditsMarker) {
			rewards = append(rewards, r)
		}
	}
	return rewards
}
