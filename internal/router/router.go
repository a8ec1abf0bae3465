package router

import (
	"time"

	"tempero/internal/config"
	"tempero/internal/handler"
	"tempero/internal/middleware"
	"tempero/internal/repository"
	"tempero/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	empresaRepo := repository.NewEmpresaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	receitaRepo := repository.NewReceitaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	fichaRepo := repository.NewFichaRepository(db)
	precoRepo := repository.NewPrecoCanalRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	insumoSvc := service.NewInsumoService(insumoRepo, receitaRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, insumoRepo, receitaRepo, fichaRepo, precoRepo)
	cardapioSvc := service.NewCardapioService(empresaRepo, produtoRepo, precoRepo, rdb,
		time.Duration(cfg.CardapioCacheSeconds)*time.Second)
	migracaoSvc := service.NewMigracaoService(empresaRepo, insumoRepo, receitaRepo,
		produtoRepo, fichaRepo, precoRepo, rdb,
		time.Duration(cfg.MigracaoLockMinutes)*time.Minute)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	cardapioH := handler.NewCardapioHandler(cardapioSvc)
	migracaoH := handler.NewMigracaoHandler(migracaoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/v1/cardapio/:empresaId", cardapioH.Obter)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		insumos := v1.Group("/insumos", middleware.RequirePapel("admin", "operador"))
		{
			insumos.GET("", insumosH.Listar)
			insumos.POST("", insumosH.Criar)
			insumos.GET("/:id", insumosH.ObterPorID)
			insumos.PUT("/:id", insumosH.Atualizar)
			insumos.DELETE("/:id", insumosH.Excluir)
		}

		produtos := v1.Group("/produtos", middleware.RequirePapel("admin", "operador"))
		{
			produtos.GET("", produtosH.Listar)
			produtos.POST("", produtosH.Criar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Desativar)
			produtos.GET("/:id/ficha", produtosH.ListarFicha)
			produtos.PUT("/:id/ficha", produtosH.SubstituirFicha)
			produtos.GET("/:id/precos", produtosH.ListarPrecos)
			produtos.PUT("/:id/precos", produtosH.SubstituirPrecos)
			produtos.GET("/:id/custo", produtosH.Custo)
		}

		// Cross-tenant migration — admin only; the handler trusts the
		// middleware for authorization.
		v1.POST("/migracao", middleware.RequirePapel("admin"), migracaoH.Executar)

		v1.POST("/usuarios", middleware.RequirePapel("admin"), authH.CriarUsuario)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
