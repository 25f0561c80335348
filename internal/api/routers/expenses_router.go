package routers

import (
	"net/http"

	"tripmate/internal/api/handlers/trips"
)

func expensesRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("PATCH /expenses/{id}", trips.UpdateExpenseHandler)

	mux.HandleFunc("DELETE /expenses/{id}", trips.DeleteExpenseHandler)

	return mux
}
