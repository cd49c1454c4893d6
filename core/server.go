package core

import (
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Server hosts a directory of static files, eg. the page under verification.
type Server struct {
	app  *fiber.App
	addr string
	root string
}

func NewServer(host string, port int, root string) *Server {
	addr := fmt.Sprintf("%s:%d", host, port)
	serv := Server{
		app:  fiber.New(fiber.Config{DisableStartupMessage: true}),
		addr: addr,
		root: root,
	}

	serv.app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logrus.Debugf("%s %s -> %d", c.Method(), c.Path(), c.Response().StatusCode())
		return err
	})

	serv.app.Static("/", root, fiber.Static{
		Index:         "index.html",
		CacheDuration: -1,
	})

	return &serv
}

func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) Listen() error {
	logrus.Infof("Serving %s on http://%s", s.root, s.addr)
	return s.app.Listen(s.addr)
}

// Serve accepts connections on an already bound listener.
func (s *Server) Serve(ln net.Listener) error {
	logrus.Infof("Serving %s on http://%s", s.root, ln.Addr())
	return s.app.Listener(ln)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
