package bootstrap

import (
	"context"
	"log"
	"time"

	"barberflow-be/internal/config"
	"barberflow-be/internal/controller"
	"barberflow-be/internal/handler"
	"barberflow-be/internal/pkg/logger"
	"barberflow-be/internal/pkg/mailer"
	"barberflow-be/internal/repository/implementation"
	"barberflow-be/internal/repository/unitofwork"
	"barberflow-be/internal/service"
	"barberflow-be/internal/websocket"
	"barberflow-be/pkg/cache"
	pktNats "barberflow-be/pkg/nats"
	"barberflow-be/pkg/whatsapp"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// appointmentCompletedTopic is the in-process queue feeding the automation
// worker.
const appointmentCompletedTopic = "appointment.completed"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	ClientController       controller.IClientController
	CatalogController      controller.ICatalogController
	AppointmentController  controller.IAppointmentController
	CommandController      controller.ICommandController
	BillingController      controller.IBillingController
	SubscriptionController controller.ISubscriptionController
	PaymentController      controller.IPaymentController
	AutomationController   controller.IAutomationController
	WhatsAppController     controller.IWhatsAppController
	AdminController        controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService     service.IConsumerService
	AutomationService   service.IAutomationService
	WhatsAppService     service.IWhatsAppService
	SubscriptionService service.ISubscriptionService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Billing summaries are cached per shop and window.
	billingCache := cache.New(5*time.Minute, 10*time.Minute)

	// WhatsApp gateway
	waClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.APIKey)

	// 3. Services
	publisherService := service.NewPublisherService(appointmentCompletedTopic, pubSub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)

	clientService := service.NewClientService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory)
	appointmentService := service.NewAppointmentService(uowFactory, natsPub, publisherService)
	commandService := service.NewCommandService(uowFactory, natsPub, billingCache, emailService)
	billingService := service.NewBillingService(uowFactory, billingCache, sysLogger)
	subscriptionService := service.NewSubscriptionService(uowFactory, natsPub, emailService)
	paymentService := service.NewPaymentService(uowFactory, natsPub)
	automationService := service.NewAutomationService(uowFactory, waClient, natsPub, sysLogger)
	whatsappService := service.NewWhatsAppService(uowFactory, waClient, cfg.WhatsApp, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	consumerService := service.NewConsumerService(pubSub, appointmentCompletedTopic, automationService)

	// 3.5 Notification system
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		ClientController:       controller.NewClientController(clientService),
		CatalogController:      controller.NewCatalogController(catalogService),
		AppointmentController:  controller.NewAppointmentController(appointmentService),
		CommandController:      controller.NewCommandController(commandService),
		BillingController:      controller.NewBillingController(billingService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		PaymentController:      controller.NewPaymentController(paymentService),
		AutomationController:   controller.NewAutomationController(automationService),
		WhatsAppController:     controller.NewWhatsAppController(whatsappService),
		AdminController:        controller.NewAdminController(adminService, authService),

		ConsumerService:     consumerService,
		AutomationService:   automationService,
		WhatsAppService:     whatsappService,
		SubscriptionService: subscriptionService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
