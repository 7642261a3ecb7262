package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/solve"
	"github.com/ehrlich-b/cube/internal/step"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SolveRequest is the batch solve endpoint's request body: a scramble in
// standard notation and an optional subset of phases to run (default: the
// full EO/DR/HTR/FR/FIN chain).
type SolveRequest struct {
	Scramble string   `json:"scramble"`
	Steps    []string `json:"steps,omitempty"`
}

// PhaseResponse is one phase's contribution to a SolveResponse.
type PhaseResponse struct {
	Kind    string `json:"kind"`
	Variant string `json:"variant"`
	Setup   string `json:"setup,omitempty"`
	Turns   string `json:"turns"`
}

// SolveResponse is the batch solve endpoint's response body.
type SolveResponse struct {
	JobID      string          `json:"job_id"`
	Phases     []PhaseResponse `json:"phases"`
	TotalMoves int             `json:"total_moves"`
	Time       string          `json:"time"`
}

func (req *SolveRequest) buildConfigs() ([]step.StepConfig, error) {
	if len(req.Steps) == 0 {
		return step.DefaultPipeline(), nil
	}
	configs := make([]step.StepConfig, 0, len(req.Steps))
	for _, name := range req.Steps {
		kind, err := step.ParseStepKind(name)
		if err != nil {
			return nil, err
		}
		configs = append(configs, step.StepConfig{Kind: kind})
	}
	return configs, nil
}

func solutionToResponse(jobID string, sol solve.Solution, elapsed time.Duration) SolveResponse {
	resp := SolveResponse{
		JobID:      jobID,
		TotalMoves: sol.TotalLength(),
		Time:       elapsed.String(),
	}
	for _, p := range sol.Phases {
		setup := ""
		if len(p.Setup) > 0 {
			parts := make([]string, len(p.Setup))
			for i, t := range p.Setup {
				parts[i] = t.String()
			}
			setup = joinSpace(parts)
		}
		resp.Phases = append(resp.Phases, PhaseResponse{
			Kind:    p.Kind.String(),
			Variant: p.Variant,
			Setup:   setup,
			Turns:   cube.TurnsString(p.Turns),
		})
	}
	return resp
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// handleHealth reports whether the server is up and how many pruning table
// families have been built so far in this process's shared registry.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":       "ok",
		"tables_built": s.registry.Built(),
	})
}

// handleSolve runs a single scramble through the reduction pipeline and
// returns the result as one JSON document, assigning it a uuid job id. The
// id only labels the response; no endpoint accepts it back.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	root := cube.NewSolved()
	if req.Scramble != "" {
		turns, err := cube.ParseTurns(req.Scramble)
		if err != nil {
			http.Error(w, "invalid scramble: "+err.Error(), http.StatusBadRequest)
			return
		}
		root.TurnAll(turns)
	}

	configs, err := req.buildConfigs()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobID := uuid.NewString()
	start := time.Now()
	solutions, err := solve.PipelineWithRegistry(r.Context(), root, configs, s.registry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := solutionToResponse(jobID, solutions[0], time.Since(start))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleSolveStream upgrades to a websocket and runs the same request the
// batch endpoint accepts. It sends the job id first and, once the whole
// pipeline has returned, one frame per phase followed by a final done
// frame; no phase is sent while later phases are still being searched.
func (s *Server) handleSolveStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(map[string]string{"error": "invalid request: " + err.Error()})
		return
	}

	root := cube.NewSolved()
	if req.Scramble != "" {
		turns, err := cube.ParseTurns(req.Scramble)
		if err != nil {
			conn.WriteJSON(map[string]string{"error": "invalid scramble: " + err.Error()})
			return
		}
		root.TurnAll(turns)
	}

	configs, err := req.buildConfigs()
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	jobID := uuid.NewString()
	conn.WriteJSON(map[string]string{"job_id": jobID})

	start := time.Now()
	solutions, err := solve.PipelineWithRegistry(r.Context(), root, configs, s.registry)
	if err != nil {
		conn.WriteJSON(map[string]string{"job_id": jobID, "error": err.Error()})
		return
	}

	resp := solutionToResponse(jobID, solutions[0], time.Since(start))
	for _, phase := range resp.Phases {
		conn.WriteJSON(map[string]any{"job_id": jobID, "phase": phase})
	}
	conn.WriteJSON(map[string]any{"job_id": jobID, "done": true, "total_moves": resp.TotalMoves, "time": resp.Time})
}
