package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backend/cipherhacks-mailer/app/api/controller"
	"backend/cipherhacks-mailer/app/api/middleware"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/internal/validator"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
	echoUtil "backend/cipherhacks-mailer/app/pkg/util/echo"
	_ "backend/cipherhacks-mailer/docs"
)

const (
	// Base paths
	apiBasePath = "/api"
	swaggerPath = "/swagger/*"
	healthPath  = "/health"

	// Routes
	sendEmailPath     = "/send-email"
	captchaConfigPath = "/captcha-config"

	sendEmailScope = "send_email"
)

type Router struct {
	*echo.Echo
	res         runtime.Resource
	vals        *validator.Validators
	middleware  *middleware.Middleware
	controllers *controller.Controllers
}

// NewRouter @title CipherHacks Mailer
// @description Captcha-gated verification email dispatch for the CipherHacks site
// @version 1.0
// @host localhost:8080
// @BasePath /
func NewRouter(
	res runtime.Resource,
	vals *validator.Validators,
	middleware *middleware.Middleware,
	controllers *controller.Controllers,
) *Router {
	if controllers == nil {
		panic("controllers cannot be nil")
	}
	if vals == nil {
		panic("validators cannot be nil")
	}
	if middleware == nil {
		panic("middleware cannot be nil")
	}

	r := &Router{
		Echo:        echo.New(),
		res:         res,
		vals:        vals,
		middleware:  middleware,
		controllers: controllers,
	}

	r.setupEcho()
	r.setupMiddlewares()
	r.setupSwagger()
	r.setupHealthRoutes()
	r.setupRoutes()

	return r
}

func (r *Router) setupEcho() {
	r.Echo.HidePort = true
	r.Echo.HideBanner = true
	r.Echo.Validator = r.vals
	r.Echo.HTTPErrorHandler = echoUtil.NewHTTPErrorHandler(r.res)
	// Rate limiting keys on the socket address, not on client-controlled headers.
	r.Echo.IPExtractor = echo.ExtractIPDirect()
}

func (r *Router) setupMiddlewares() {
	r.Echo.Use(echoMiddleware.Recover())
	r.Echo.Use(echoUtil.SetupRequestIDMiddleware())
	r.Echo.Use(echoUtil.SetupCORSMiddleware(r.res))
	r.Echo.Use(echoUtil.SetupLoggerMiddleware(r.res))
}

func (r *Router) setupSwagger() {
	env := ctxutil.GetAppModeFromEnv()
	if env == ctxutil.AppModeDev || env == ctxutil.AppModeLocal {
		r.Echo.Debug = true
		r.Echo.GET(swaggerPath, echoSwagger.WrapHandler)
	}
}

func (r *Router) setupHealthRoutes() {
	r.Echo.GET(healthPath, r.controllers.HealthController.HealthCheck)
}

func (r *Router) setupRoutes() {
	apiGroup := r.Echo.Group(apiBasePath)

	r.setupEmailRoutes(apiGroup)
	r.setupCaptchaRoutes(apiGroup)
}

func (r *Router) setupEmailRoutes(apiGroup *echo.Group) {
	apiGroup.POST(sendEmailPath, r.controllers.EmailController.SendEmail, r.middleware.RequireRateLimit(sendEmailScope))
}

func (r *Router) setupCaptchaRoutes(apiGroup *echo.Group) {
	apiGroup.GET(captchaConfigPath, r.controllers.CaptchaController.GetConfig)
}
