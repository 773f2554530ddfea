package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Flarenzy/ipcalc/internal/render"
	"github.com/Flarenzy/ipcalc/internal/subnet"
	"github.com/Flarenzy/ipcalc/internal/version"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func (a *API) handleVersion(w http.ResponseWriter, r *http.Request) {
	if err := encode(w, r, http.StatusOK, VersionResponse{Name: version.Name, Version: version.Version}); err != nil {
		a.Logger.Error().Err(err).Msg("responding to client")
	}
}

// badRequest writes the error message in the standard envelope. Every engine
// error is a client-side input problem, so they all map to 400.
func (a *API) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	if encErr := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()}); encErr != nil {
		a.Logger.Error().Err(encErr).Msg("responding to client")
	}
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, view any) {
	if err := encode(w, r, http.StatusOK, view); err != nil {
		a.Logger.Error().Err(err).Msg("responding to client")
	}
}

// @Summary Calculate subnet details
// @Tags subnet
// @Produce json
// @Param cidr query string true "CIDR, IPv4 or IPv6"
// @Success 200 {object} render.V4View
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/subnet [get]
func (a *API) handleSubnet(w http.ResponseWriter, r *http.Request) {
	cidr := r.URL.Query().Get("cidr")
	s, err := subnet.Parse(subnet.DetectFamily(cidr), cidr)
	if err != nil {
		a.Logger.Debug().Err(err).Str("cidr", cidr).Msg("parsing cidr from request")
		a.badRequest(w, r, err)
		return
	}
	a.respond(w, r, render.NewSubnetView(s))
}

// @Summary Check whether a subnet contains an address
// @Tags subnet
// @Produce json
// @Param cidr query string true "CIDR to check against"
// @Param address query string true "Address to test"
// @Success 200 {object} render.ContainsView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/contains [get]
func (a *API) handleContains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := subnet.Contains(q.Get("cidr"), q.Get("address"))
	if err != nil {
		a.Logger.Debug().Err(err).Str("cidr", q.Get("cidr")).Str("address", q.Get("address")).Msg("containment check failed")
		a.badRequest(w, r, err)
		return
	}
	a.respond(w, r, render.NewContainsView(res))
}

// @Summary Split a supernet into smaller subnets
// @Tags subnet
// @Produce json
// @Param cidr query string true "Supernet CIDR"
// @Param prefix query int true "New prefix length"
// @Param count query int false "Generate only the first N subnets"
// @Param count_only query bool false "Report the available count without generating"
// @Success 200 {object} render.SplitView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/split [get]
func (a *API) handleSplit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cidr := q.Get("cidr")

	prefix, err := strconv.Atoi(q.Get("prefix"))
	if err != nil {
		a.Logger.Debug().Str("prefix", q.Get("prefix")).Msg("non-numeric prefix in request")
		a.badRequest(w, r, fmt.Errorf("invalid prefix: %s", q.Get("prefix")))
		return
	}

	if countOnly, _ := strconv.ParseBool(q.Get("count_only")); countOnly {
		res, err := subnet.CountOnly(cidr, prefix)
		if err != nil {
			a.badRequest(w, r, err)
			return
		}
		a.respond(w, r, render.NewCountView(res))
		return
	}

	var res subnet.SplitResult
	if rawCount := q.Get("count"); rawCount != "" {
		count, err := strconv.ParseUint(rawCount, 10, 64)
		if err != nil {
			a.Logger.Debug().Str("count", rawCount).Msg("non-numeric count in request")
			a.badRequest(w, r, fmt.Errorf("invalid count: %s", rawCount))
			return
		}
		res, err = subnet.Split(cidr, prefix, count)
		if err != nil {
			a.badRequest(w, r, err)
			return
		}
	} else {
		res, err = subnet.SplitMax(cidr, prefix)
		if err != nil {
			a.badRequest(w, r, err)
			return
		}
	}
	a.respond(w, r, render.NewSplitView(res))
}

// @Summary Decompose an address range into CIDRs
// @Tags subnet
// @Produce json
// @Param start query string true "First address of the range"
// @Param end query string true "Last address of the range"
// @Success 200 {object} render.FromRangeView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/range [get]
func (a *API) handleRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := subnet.FromRange(q.Get("start"), q.Get("end"))
	if err != nil {
		a.Logger.Debug().Err(err).Str("start", q.Get("start")).Str("end", q.Get("end")).Msg("range decomposition failed")
		a.badRequest(w, r, err)
		return
	}
	a.respond(w, r, render.NewFromRangeView(res))
}

// @Summary Summarize a CIDR list
// @Tags subnet
// @Accept json
// @Produce json
// @Param payload body SummarizeRequest true "CIDRs to summarize, all one family"
// @Success 200 {object} render.SummaryView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/summarize [post]
func (a *API) handleSummarize(w http.ResponseWriter, r *http.Request) {
	req, err := decode[SummarizeRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.Debug().Err(err).Msg("unmarshaling summarize request")
		a.badRequest(w, r, err)
		return
	}

	family := subnet.V4
	if len(req.CIDRs) > 0 {
		family = subnet.DetectFamily(req.CIDRs[0])
	}
	res, err := subnet.Summarize(family, req.CIDRs)
	if err != nil {
		a.badRequest(w, r, err)
		return
	}
	a.respond(w, r, render.NewSummaryView(res))
}

// @Summary Process a batch of CIDRs
// @Tags subnet
// @Accept json
// @Produce json
// @Param payload body BatchRequest true "CIDRs to process, v4 and v6 mixed freely"
// @Success 200 {object} render.BatchView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/batch [post]
func (a *API) handleBatch(w http.ResponseWriter, r *http.Request) {
	req, err := decode[BatchRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.Debug().Err(err).Msg("unmarshaling batch request")
		a.badRequest(w, r, err)
		return
	}

	res, err := subnet.ProcessBatch(req.CIDRs)
	if err != nil {
		a.badRequest(w, r, err)
		return
	}
	a.respond(w, r, render.NewBatchView(res))
}
