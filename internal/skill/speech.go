package skill

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"bitbucket.org/sotavant/mr-bus-skill/internal/routes"
	"strconv"
	"strings"
)

func Speech(entries []models.BusTimes, allow routes.AllowList) string {
	var sb strings.Builder

	for _, bus := range entries {
		if !allow.Allows(bus.StopID, bus.ServiceID) {
			continue
		}

		sb.WriteString("There's a ")
		sb.WriteString(bus.ServiceID)
		sb.WriteString(" in ")

		for i, arrival := range bus.Arrivals {
			if arrival.Minutes >= 60 {
				continue
			}
			sb.WriteString(strconv.Itoa(arrival.Minutes))
			// position in the full list, not among spoken arrivals
			if i < len(bus.Arrivals)-1 {
				sb.WriteString(" and ")
			}
		}

		sb.WriteString(" minutes. ")
	}

	return sb.String()
}
