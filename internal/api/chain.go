package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tcfw/starnotary/pkg/storage"
)

func init() {
	reg = append(reg, func() APIHandler { return &chainApi{} })
}

type chainApi struct {
	BaseHandler
}

func (ca *chainApi) Setup(a *Api, r *mux.Router) error {
	ca.a = a

	r.HandleFunc("/block/height/{height:[0-9]+}", ca.blockByHeight).Methods(http.MethodGet)
	r.HandleFunc("/block/hash/{hash}", ca.blockByHash).Methods(http.MethodGet)
	r.HandleFunc("/blocks/{address}", ca.starsByOwner).Methods(http.MethodGet)
	r.HandleFunc("/chain", ca.blocks).Methods(http.MethodGet)
	r.HandleFunc("/chain/height", ca.height).Methods(http.MethodGet)
	r.HandleFunc("/validate", ca.validate).Methods(http.MethodGet)

	return nil
}

func (ca *chainApi) blockByHeight(w http.ResponseWriter, r *http.Request) {
	h, err := strconv.ParseUint(mux.Vars(r)["height"], 10, 64)
	if err != nil {
		badRequest(w, err)
		return
	}

	b, err := ca.a.n.Chain().BlockByHeight(h)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newBlockResponse(b))
}

func (ca *chainApi) blockByHash(w http.ResponseWriter, r *http.Request) {
	id, err := storage.ParseBlockID(mux.Vars(r)["hash"])
	if err != nil {
		badRequest(w, err)
		return
	}

	b, err := ca.a.n.Chain().BlockByHash(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newBlockResponse(b))
}

func (ca *chainApi) starsByOwner(w http.ResponseWriter, r *http.Request) {
	stars, err := ca.a.n.Chain().StarsByOwner(mux.Vars(r)["address"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stars)
}

func (ca *chainApi) blocks(w http.ResponseWriter, _ *http.Request) {
	blocks := ca.a.n.Chain().Blocks()

	res := make([]*BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		res = append(res, newBlockResponse(b))
	}

	writeJSON(w, http.StatusOK, res)
}

func (ca *chainApi) height(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &HeightResponse{Height: ca.a.n.Chain().Height()})
}

func (ca *chainApi) validate(w http.ResponseWriter, _ *http.Request) {
	c := ca.a.n.Chain()

	findings, err := c.Validate()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ValidateResponse{
		Valid:    len(findings) == 0,
		Height:   c.Height(),
		Findings: findings,
	})
}
