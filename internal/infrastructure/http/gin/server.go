package gin

import (
	"fmt"
	"html/template"

	ginlib "github.com/gin-gonic/gin"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/config"
)

type Server struct {
	engine *ginlib.Engine
	addr   string
}

func NewEngine(templates *template.Template) *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.SetHTMLTemplate(templates)
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		engine: engine,
		addr:   cfg.Address(),
	}
}

func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	return s.engine.Run(s.addr)
}
