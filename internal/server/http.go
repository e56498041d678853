package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"mirkwall-server/internal/engine"
	"mirkwall-server/internal/version"
	"mirkwall-server/pkg/logger"
)

type Server struct {
	Port string

	// Seed для новых сессий. 0 - каждая сессия получает свой
	// случайный seed.
	Seed int64
}

func New(port string, seed int64) *Server {
	return &Server{
		Port: port,
		Seed: seed,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	logger.Log.Infof("🛡️  Mirkwall Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket.
// Каждое подключение получает собственную изолированную партию.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	cfg := engine.NewConfig()
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}

	session, err := engine.NewSession(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create session")
		if cerr := conn.Close(); cerr != nil {
			logger.Log.WithError(cerr).Warn("failed to close websocket connection")
		}
		return
	}

	client := NewClient(session, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}
