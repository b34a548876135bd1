package controller

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

// BotController админский Telegram бот: просмотр состава и бронирований,
// смена статуса и удаление бронирований. Команды принимаются только из чатов allowlist.
type BotController struct {
	bot            *bot.Bot
	adminService   *service.AdminService
	bookingService *service.BookingService
	allowedChats   map[int64]struct{}
	logger         *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	adminService *service.AdminService,
	bookingService *service.BookingService,
	adminChatIDs []int64,
	logger *zap.Logger,
) *BotController {
	allowed := make(map[int64]struct{}, len(adminChatIDs))
	for _, id := range adminChatIDs {
		allowed[id] = struct{}{}
	}

	return &BotController{
		bot:            botInstance,
		adminService:   adminService,
		bookingService: bookingService,
		allowedChats:   allowed,
		logger:         logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.requireAdmin(c.HandleHelp))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/students", bot.MatchTypeExact, c.requireAdmin(c.HandleStudents))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tutors", bot.MatchTypeExact, c.requireAdmin(c.HandleTutors))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bookings", bot.MatchTypeExact, c.requireAdmin(c.HandleBookings))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/setstatus", bot.MatchTypePrefix, c.requireAdmin(c.HandleSetStatus))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/deletebooking", bot.MatchTypePrefix, c.requireAdmin(c.HandleDeleteBooking))

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "students", Description: "👩‍🎓 All students"},
		{Command: "tutors", Description: "🧑‍🏫 All tutors"},
		{Command: "bookings", Description: "📅 All bookings"},
		{Command: "setstatus", Description: "✏️ Set booking status: /setstatus <id> <STATUS>"},
		{Command: "deletebooking", Description: "🗑 Delete booking: /deletebooking <id>"},
		{Command: "help", Description: "❓ Command help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота; блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting admin bot...")
	c.bot.Start(ctx)
	return nil
}

// requireAdmin пропускает только чаты из allowlist, остальные молча игнорирует
func (c *BotController) requireAdmin(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}

		chatID := update.Message.Chat.ID
		if _, ok := c.allowedChats[chatID]; !ok {
			c.logger.Warn("Ignoring command from non-admin chat",
				zap.Int64("chat_id", chatID),
				zap.String("text", update.Message.Text),
			)
			return
		}

		next(ctx, b, update)
	}
}

func (c *BotController) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	c.sendMessage(ctx, b, update.Message.Chat.ID, HelpText())
}

func (c *BotController) HandleStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	students, err := c.adminService.ListStudents(ctx)
	if err != nil {
		c.logger.Error("Failed to list students", zap.Error(err))
		c.sendMessage(ctx, b, update.Message.Chat.ID, ErrorMessage(err))
		return
	}

	c.sendMessage(ctx, b, update.Message.Chat.ID, FormatStudents(students))
}

func (c *BotController) HandleTutors(ctx context.Context, b *bot.Bot, update *models.Update) {
	tutors, err := c.adminService.ListTutors(ctx)
	if err != nil {
		c.logger.Error("Failed to list tutors", zap.Error(err))
		c.sendMessage(ctx, b, update.Message.Chat.ID, ErrorMessage(err))
		return
	}

	c.sendMessage(ctx, b, update.Message.Chat.ID, FormatTutors(tutors))
}

func (c *BotController) HandleBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	bookings, err := c.adminService.ListBookings(ctx)
	if err != nil {
		c.logger.Error("Failed to list bookings", zap.Error(err))
		c.sendMessage(ctx, b, update.Message.Chat.ID, ErrorMessage(err))
		return
	}

	c.sendMessage(ctx, b, update.Message.Chat.ID, FormatBookings(bookings))
}

// HandleSetStatus /setstatus <id> <STATUS>
func (c *BotController) HandleSetStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	bookingID, status, err := ParseSetStatusArgs(update.Message.Text)
	if err != nil {
		c.sendMessage(ctx, b, chatID, ErrorMessage(err))
		return
	}

	if err := c.bookingService.UpdateStatus(ctx, bookingID, status); err != nil {
		if !isUserError(err) {
			c.logger.Error("Failed to update booking status", zap.Int64("booking_id", bookingID), zap.Error(err))
		}
		c.sendMessage(ctx, b, chatID, ErrorMessage(err))
		return
	}

	display := GetBookingStatusDisplay(status)
	c.sendMessage(ctx, b, chatID, FormatStatusChanged(bookingID, display))
}

// HandleDeleteBooking /deletebooking <id>
func (c *BotController) HandleDeleteBooking(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	bookingID, err := ParseBookingIDArg(update.Message.Text)
	if err != nil {
		c.sendMessage(ctx, b, chatID, ErrorMessage(err))
		return
	}

	if err := c.adminService.DeleteBooking(ctx, bookingID); err != nil {
		c.logger.Error("Failed to delete booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		c.sendMessage(ctx, b, chatID, ErrorMessage(err))
		return
	}

	c.sendMessage(ctx, b, chatID, FormatBookingDeleted(bookingID))
}

// sendMessage отправляет сообщение и логирует если не удалось
func (c *BotController) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		c.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

func isUserError(err error) bool {
	return errors.Is(err, service.ErrBookingNotFound) || errors.Is(err, service.ErrInvalidStatus)
}
