package serverapp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/thedidscuf/GameYoutube/internal/achievement"
	"github.com/thedidscuf/GameYoutube/internal/economy"
	"github.com/thedidscuf/GameYoutube/internal/minigame"
	"github.com/thedidscuf/GameYoutube/internal/model"
	"github.com/thedidscuf/GameYoutube/internal/studio"
	"github.com/thedidscuf/GameYoutube/ui/page"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 16

type apiHandler struct {
	svc *studio.Service
	log zerolog.Logger
}

func (h *apiHandler) routes(r chi.Router) {
	r.Get("/catalog", h.catalog)
	r.Get("/balance", h.balance)
	r.Get("/stats", h.stats)

	r.Route("/channels", func(r chi.Router) {
		r.Get("/", h.listChannels)
		r.Post("/", h.createChannel)
		r.Get("/active", h.activeChannel)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getChannel)
			r.Delete("/", h.deleteChannel)
			r.Post("/select", h.selectChannel)
			r.Post("/videos", h.upload)
			r.Post("/day", h.advanceDay)
			r.Post("/equipment/{slot}", h.upgrade)
			r.Post("/monetization", h.monetize)
			r.Get("/achievements", h.achievements)
			r.Post("/minigames/{kind}", h.startMinigame)
		})
	})

	r.Route("/minigames/{session}", func(r chi.Router) {
		r.Get("/", h.minigameState)
		r.Post("/input", h.minigameInput)
		r.Post("/finalize", h.finalizeMinigame)
		r.Delete("/", h.abandonMinigame)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not_found", "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
}

type channelView struct {
	model.Channel
	LiveSession string `json:"liveSession,omitempty"`
}

func (h *apiHandler) view(ch model.Channel) channelView {
	id, _ := h.svc.LiveSession(ch.ID)
	return channelView{Channel: ch, LiveSession: id}
}

type catalogView struct {
	Genres           []economy.Genre           `json:"genres"`
	RecordingMethods []economy.RecordingMethod `json:"recordingMethods"`
	Equipment        []economy.Item            `json:"equipment"`
	Achievements     []achievement.Achievement `json:"achievements"`
	MinigameCosts    map[model.GameKind]int    `json:"minigameCosts"`
}

func (h *apiHandler) catalog(w http.ResponseWriter, r *http.Request) {
	bal := h.svc.Balance()
	writeJSON(w, http.StatusOK, catalogView{
		Genres:           economy.Genres,
		RecordingMethods: economy.RecordingMethods,
		Equipment:        economy.Items,
		Achievements:     achievement.Catalog(),
		MinigameCosts: map[model.GameKind]int{
			model.GameCommunity: minigame.Cost(model.GameCommunity, bal),
			model.GameThumbnail: minigame.Cost(model.GameThumbnail, bal),
			model.GameStream:    minigame.Cost(model.GameStream, bal),
		},
	})
}

func (h *apiHandler) balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Balance())
}

func (h *apiHandler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GlobalStats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *apiHandler) listChannels(w http.ResponseWriter, r *http.Request) {
	chs, err := h.svc.ListChannels(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]channelView, 0, len(chs))
	for _, ch := range chs {
		out = append(out, h.view(ch))
	}
	writeJSON(w, http.StatusOK, out)
}

type createChannelRequest struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

func (h *apiHandler) createChannel(w http.ResponseWriter, r *http.Request) {
	var in createChannelRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "bad json")
		return
	}
	ch, err := h.svc.CreateChannel(r.Context(), in.Name, in.ProfilePicture)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.view(ch))
}

func (h *apiHandler) activeChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := h.svc.ActiveChannel(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view(ch))
}

func (h *apiHandler) getChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := h.svc.GetChannel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view(ch))
}

func (h *apiHandler) deleteChannel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteChannel(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *apiHandler) selectChannel(w http.ResponseWriter, r *http.Request) {
	ch, err := h.svc.SelectChannel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view(ch))
}

func (h *apiHandler) upload(w http.ResponseWriter, r *http.Request) {
	var in economy.UploadChoices
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "bad json")
		return
	}
	out, err := h.svc.Upload(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *apiHandler) advanceDay(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.AdvanceDay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *apiHandler) upgrade(w http.ResponseWriter, r *http.Request) {
	slot := model.EquipmentSlot(chi.URLParam(r, "slot"))
	out, err := h.svc.UpgradeEquipment(r.Context(), chi.URLParam(r, "id"), slot)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *apiHandler) monetize(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ActivateMonetization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *apiHandler) achievements(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Achievements(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *apiHandler) startMinigame(w http.ResponseWriter, r *http.Request) {
	kind := model.GameKind(chi.URLParam(r, "kind"))
	out, err := h.svc.StartMinigame(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *apiHandler) minigameState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.MinigameState(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *apiHandler) minigameInput(w http.ResponseWriter, r *http.Request) {
	var in minigame.Input
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "bad json")
		return
	}
	st, err := h.svc.AdvanceMinigame(r.Context(), chi.URLParam(r, "session"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *apiHandler) finalizeMinigame(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.FinalizeMinigame(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *apiHandler) abandonMinigame(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AbandonMinigame(r.Context(), chi.URLParam(r, "session")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *apiHandler) dashboard(r *http.Request) (page.DashboardData, error) {
	ctx := r.Context()
	chs, err := h.svc.ListChannels(ctx)
	if err != nil {
		return page.DashboardData{}, err
	}
	st, err := h.svc.GlobalStats(ctx)
	if err != nil {
		return page.DashboardData{}, err
	}
	data := page.DashboardData{
		Stats:        st,
		Channels:     chs,
		ChannelLimit: h.svc.Balance().ChannelLimit(h.svc.Premium()),
		Premium:      h.svc.Premium(),
	}
	if active, err := h.svc.ActiveChannel(ctx); err == nil {
		data.ActiveID = active.ID
	}
	return data, nil
}

// decodeJSON reads a bounded JSON body. An empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, out any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeErr(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": msg},
	})
}

func (h *apiHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request_failed")
		writeErr(w, status, code, "internal server error")
		return
	}
	writeErr(w, status, code, err.Error())
}
