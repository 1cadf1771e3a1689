package api

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/hatcher/genui/chart"
	"github.com/hatcher/genui/pkg/pubsub"
	"github.com/hatcher/genui/todo"
)

var Version = "0.1.0"

// Server binds the chart generator and the todo service to HTTP routes.
type Server struct {
	charts *chart.Generator
	todos  *todo.Service
	events *pubsub.Broker[todo.List]
}

// NewServer wires the handlers. events may be nil, which disables the
// change feed.
func NewServer(charts *chart.Generator, todos *todo.Service, events *pubsub.Broker[todo.List]) *Server {
	return &Server{charts: charts, todos: todos, events: events}
}

func (s *Server) Register(h *server.Hertz) {
	h.GET("/", s.handleRoot)
	h.GET("/health", s.handleHealth)

	g := h.Group("/api")
	g.GET("/chart", s.handleChart)
	g.GET("/chart/categories", s.handleCategories)
	g.GET("/todos", s.handleGetTodos)
	g.POST("/todos", s.handleReplaceTodos)
	if s.events != nil {
		g.GET("/todos/events", s.handleTodoEvents)
	}
}
