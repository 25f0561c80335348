package trips

import (
	"net/http"

	"tripmate/pkg/utils"
)

// FUNC TO GET TRIP EXPENSE STATS
func GetTripStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stats, err := statsSvc.TripStats(r.Context(), p.ID, tripID)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"totalExpenses":         stats.TotalExpenses,
			"totalExpenseCount":     stats.TotalExpenseCount,
			"userTotalExpenses":     stats.PerUserTotal[p.ID],
			"amountOwedToUser":      stats.AmountOwedTo(p.ID),
			"participantCount":      stats.ParticipantCount,
			"averagePerParticipant": stats.AveragePerParticipant,
			"totalByCategory":       stats.TotalByCategory,
		},
	})
}
