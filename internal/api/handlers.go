package api

import (
	"log/slog"
	"net/http"

	"activation-engine/internal/analytics"
	"activation-engine/internal/engine"
)

const maxBodyBytes = 1 << 20

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type RankTasksResponse struct {
	Candidates []engine.RankedCandidate `json:"candidates"`
}

type PromptCategoryResponse struct {
	Category *string `json:"category"`
}

// The Run* helpers are shared by the HTTP handlers and the CLI.

func RunTags(eng *engine.Engine, us engine.UserState) TagsResponse {
	return TagsResponse{Tags: eng.Tags(us)}
}

func RunRankTasks(eng *engine.Engine, req RankTasksRequest) RankTasksResponse {
	return RankTasksResponse{Candidates: eng.RankTasks(*req.UserState, req.Tasks)}
}

func RunPromptCategory(eng *engine.Engine, req PromptCategoryRequest) PromptCategoryResponse {
	c, ok := eng.PickPromptCategory(req.Mood, req.Energy, req.Categories)
	if !ok {
		return PromptCategoryResponse{}
	}
	return PromptCategoryResponse{Category: &c}
}

func GetTagsHandler(eng *engine.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var us engine.UserState
		if err := Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), &us); err != nil {
			writeDecodeError(w, err)
			return
		}

		resp := RunTags(eng, us)

		analytics.Log(r.Context(), logger, analytics.FromRequest(r), "tags_derived", map[string]any{
			"energy_band": analytics.Band(us.Energy),
			"has_mood":    us.Mood != "",
			"has_context": us.Context != nil,
			"tag_count":   len(resp.Tags),
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func RankTasksHandler(eng *engine.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RankTasksRequest
		if err := Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
			writeDecodeError(w, err)
			return
		}

		resp := RunRankTasks(eng, req)

		props := map[string]any{
			"energy_band": analytics.Band(req.UserState.Energy),
			"task_count":  len(req.Tasks),
		}
		if len(resp.Candidates) > 0 {
			props["top_score"] = resp.Candidates[0].Score
		}
		analytics.Log(r.Context(), logger, analytics.FromRequest(r), "tasks_ranked", props)

		writeJSON(w, http.StatusOK, resp)
	}
}

func PromptCategoryHandler(eng *engine.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PromptCategoryRequest
		if err := Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
			writeDecodeError(w, err)
			return
		}

		resp := RunPromptCategory(eng, req)

		analytics.Log(r.Context(), logger, analytics.FromRequest(r), "category_picked", map[string]any{
			"energy_band":    analytics.Band(req.Energy),
			"has_mood":       req.Mood != "",
			"category_count": len(req.Categories),
			"picked":         resp.Category != nil,
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	}
}
