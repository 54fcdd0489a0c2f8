package nextrip

import (
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

func handleHealth(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Upstream: client.BaseURL(),
		})
	}
}
