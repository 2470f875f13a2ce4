package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventario/internal/models"
	"inventario/internal/session"
)

// Catalog is what the handlers need from the catalog store.
type Catalog interface {
	ListCategorias() ([]models.Categoria, error)
	AddCategoria(nome string) (*models.Categoria, error)
	AddProduto(nome, quantidade, preco, categoriaID string) (*models.Produto, error)
}

// Credentials is what the login handler needs from the credential store.
type Credentials interface {
	Verify(username, password string) (*models.User, bool)
}

// Server holds the handler dependencies. Everything is injected; there is
// no package-level state.
type Server struct {
	catalog Catalog
	creds   Credentials
	sess    *session.Manager
	logger  *zap.Logger
}

func New(catalog Catalog, creds Credentials, sess *session.Manager, logger *zap.Logger) *Server {
	return &Server{catalog: catalog, creds: creds, sess: sess, logger: logger}
}

// Register installs the route table on r.
func (s *Server) Register(r *gin.Engine) {
	guard := s.sess.RequireLogin()

	r.GET("/", guard, s.showDashboard)
	r.POST("/add_categoria", guard, s.addCategoria)
	r.POST("/add_produto", guard, s.addProduto)

	r.GET("/login", s.showLogin)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)
}

func (s *Server) showDashboard(c *gin.Context) {
	categorias, err := s.catalog.ListCategorias()
	if err != nil {
		s.logger.Error("list categorias", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{"Categorias": categorias})
}

func (s *Server) addCategoria(c *gin.Context) {
	if _, err := s.catalog.AddCategoria(c.PostForm("nome")); err != nil {
		s.logger.Error("add categoria", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) addProduto(c *gin.Context) {
	_, err := s.catalog.AddProduto(
		c.PostForm("nome"),
		c.PostForm("quantidade"),
		c.PostForm("preco"),
		c.PostForm("categoria_id"),
	)
	if err != nil {
		s.logger.Error("add produto", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", nil)
}

func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, ok := s.creds.Verify(username, password)
	if !ok {
		c.String(http.StatusOK, "Usuário ou senha inválidos")
		return
	}
	if err := s.sess.Login(c, user.ID); err != nil {
		s.logger.Error("save session", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	if err := s.sess.Logout(c); err != nil {
		s.logger.Error("clear session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
