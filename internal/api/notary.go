package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/tcfw/starnotary/pkg/notary"
)

func init() {
	reg = append(reg, func() APIHandler { return &notaryApi{} })
}

type notaryApi struct {
	BaseHandler
}

func (na *notaryApi) Setup(a *Api, r *mux.Router) error {
	na.a = a

	r.HandleFunc("/requestValidation", na.requestValidation).Methods(http.MethodPost)
	r.HandleFunc("/submitstar", na.submitStar).Methods(http.MethodPost)

	return nil
}

func (na *notaryApi) requestValidation(w http.ResponseWriter, r *http.Request) {
	req := &ValidationRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequest(w, err)
		return
	}

	if req.Address == "" {
		badRequest(w, errors.New("address is required"))
		return
	}

	n := na.a.n.Notary()
	msg := n.IssueChallenge(req.Address)

	c, err := notary.ParseChallenge(msg)
	if err != nil {
		// addresses containing the separator cannot round trip
		badRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ValidationResponse{
		Address:          req.Address,
		Message:          msg,
		RequestTimeStamp: c.IssuedAt,
		ValidationWindow: int64(n.Window().Seconds()),
	})
}

func (na *notaryApi) submitStar(w http.ResponseWriter, r *http.Request) {
	req := &SubmitStarRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequest(w, err)
		return
	}

	b, err := na.a.n.Notary().SubmitProof(&notary.Proof{
		Address:   req.Address,
		Message:   req.Message,
		Signature: req.Signature,
		Star:      req.Star,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newBlockResponse(b))
}
