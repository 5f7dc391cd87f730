package bootstrap

import (
	"log"

	"a11y-advocate-be/internal/config"
	"a11y-advocate-be/internal/constant"
	"a11y-advocate-be/internal/controller"
	"a11y-advocate-be/internal/pkg/logger"
	"a11y-advocate-be/internal/repository/memory"
	"a11y-advocate-be/internal/service"
	"a11y-advocate-be/pkg/advisor"
	"a11y-advocate-be/pkg/knowledge"
	"a11y-advocate-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	ImageController    controller.IImageController
	ResourceController controller.IResourceController
	StatusController   controller.IStatusController

	// Background Services (Exposed for main.go to run)
	MetricsService service.IMetricsService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	kb := knowledge.Default()
	if err := kb.Validate(); err != nil {
		log.Fatalf("[FATAL] Knowledge base integrity check failed: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Generation Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider.Configured() {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
	} else {
		// Unconfigured is a persistent status, not a startup failure: the
		// pipeline degrades to offline and fallback content.
		log.Printf("[WARN] LLM Provider %s is not configured - serving offline content only", cfg.Ai.Provider)
	}

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(constant.ChatResolvedTopic, pubSub)
	metricsService := service.NewMetricsService(pubSub, constant.ChatResolvedTopic, sysLogger)

	resolver := advisor.NewResolver(kb, llmProvider)
	advisorService := service.NewAdvisorService(
		cfg,
		resolver,
		llmProvider,
		sessionRepo,
		publisherService,
		metricsService,
		sysLogger,
	)
	resourceService := service.NewResourceService(kb)

	// 6. Controllers
	return &Container{
		ChatController:     controller.NewChatController(advisorService),
		ImageController:    controller.NewImageController(advisorService),
		ResourceController: controller.NewResourceController(resourceService),
		StatusController:   controller.NewStatusController(advisorService),

		MetricsService: metricsService,
	}
}
