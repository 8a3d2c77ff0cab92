package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/engine"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
	"github.com/jsphweid/changes/util"
)

var (
	sessionsMu sync.Mutex
	sessions   = make(map[string]*engine.Engine)

	// collapse bursts of settings updates into one log line
	settingsLog = debounce.New(500 * time.Millisecond)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the progression engine over http",
	Long:  `Serves the progression engine over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func getSession(r *http.Request) (*engine.Engine, bool) {
	id := mux.Vars(r)["id"]
	e, ok := sessions[id]
	return e, ok
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input model.CreateSessionRequest
	// empty body means all defaults
	json.NewDecoder(r.Body).Decode(&input)

	e := engine.New()
	if input.Settings != nil {
		e.Configure(*input.Settings)
	}
	if input.Key != nil {
		k, err := theory.NormalizeKey(*input.Key)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		e.Reset(&k)
	}

	id := uuid.New().String()
	sessionsMu.Lock()
	sessions[id] = e
	state := e.State()
	sessionsMu.Unlock()

	json.NewEncoder(w).Encode(model.CreateSessionResponse{Id: id, State: state})
}

func HandleListSessions(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	ids := util.GetKeysSorted(sessions)
	sessionsMu.Unlock()
	json.NewEncoder(w).Encode(model.SessionListResponse{Ids: ids})
}

func HandleGenerateBars(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	e, ok := getSession(r)
	if !ok {
		writeError(w, 404, "no such session")
		return
	}

	var input model.GenerateBarsRequest
	json.NewDecoder(r.Body).Decode(&input)
	count := util.Min(input.Count, 128)
	if count < 1 {
		count = 1
	}

	bars := make([]model.Bar, 0, count)
	for i := 0; i < count; i++ {
		bars = append(bars, e.GenerateBar())
	}
	json.NewEncoder(w).Encode(bars)
}

func HandleGetState(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	e, ok := getSession(r)
	if !ok {
		writeError(w, 404, "no such session")
		return
	}
	json.NewEncoder(w).Encode(e.State())
}

func HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	e, ok := getSession(r)
	if !ok {
		writeError(w, 404, "no such session")
		return
	}

	var patch model.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, 400, "could not parse settings: "+err.Error())
		return
	}
	e.Configure(patch)

	s := e.Settings()
	settingsLog(func() {
		fmt.Printf("settings now: %+v\n", s)
	})
	json.NewEncoder(w).Encode(e.State())
}

func HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	e, ok := getSession(r)
	if !ok {
		writeError(w, 404, "no such session")
		return
	}

	var input model.ResetRequest
	json.NewDecoder(r.Body).Decode(&input)
	if input.Key != nil {
		k, err := theory.NormalizeKey(*input.Key)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		e.Reset(&k)
	} else {
		e.Reset(nil)
	}
	json.NewEncoder(w).Encode(e.State())
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions", HandleListSessions).Methods("GET")
	router.HandleFunc("/sessions/{id}/bars", HandleGenerateBars).Methods("POST")
	router.HandleFunc("/sessions/{id}/state", HandleGetState).Methods("GET")
	router.HandleFunc("/sessions/{id}/settings", HandleUpdateSettings).Methods("PATCH")
	router.HandleFunc("/sessions/{id}/reset", HandleReset).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("Listening on %v\n", constants.GetPort())
	log.Fatal(http.ListenAndServe(constants.GetPort(), handler))
}
