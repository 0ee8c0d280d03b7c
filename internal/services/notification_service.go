package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/infra"
	"boutique-backend/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrNotificationFailed = errors.New("notification failed")
)

// ProgressMessage is the resolved bilingual notification, ready for dispatch.
// Resolution is pure; handing the message to the mailer is a separate step.
type ProgressMessage struct {
	To      string
	Subject string
	HTML    string

	OrderID    string
	ProductKey string
	Progress   int
}

type ProgressNotificationInput struct {
	OrderID      string
	Email        string
	ProductKey   string
	Progress     *int
	ArticleIndex int
}

type NotificationService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	mailer   infra.Mailer
	logger   *zap.Logger
}

func NewNotificationService(orders repository.OrderRepository, products repository.ProductRepository, mailer infra.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		orders:   orders,
		products: products,
		mailer:   mailer,
		logger:   logger,
	}
}

// ResolveProgressMessage validates the request, locates the addressed line
// item and renders the French and Arabic bodies. The color label is echoed
// back verbatim in whichever language the caller submitted it.
func (s *NotificationService) ResolveProgressMessage(ctx context.Context, in ProgressNotificationInput) (*ProgressMessage, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}
	if in.ProductKey == "" {
		return nil, fmt.Errorf("%w: productKey", ErrMissingField)
	}
	if in.Progress == nil {
		return nil, fmt.Errorf("%w: progress", ErrMissingField)
	}

	order, err := s.orders.FindByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	key, err := domain.ParseProductKey(in.ProductKey)
	if err != nil {
		return nil, err
	}

	idx, ok := order.FindLineItem(key)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item := order.Products[idx]

	title := item.ProductID
	if product, err := s.products.FindByID(item.ProductID); err != nil {
		return nil, err
	} else if product != nil {
		title = product.Title
	}

	progress := *in.Progress
	msg := &ProgressMessage{
		To:         in.Email,
		Subject:    progressSubject(order.ShortID(), in.ArticleIndex, progress),
		HTML:       progressBody(order.Name, order.ShortID(), title, key.ColorLabel, in.ArticleIndex, progress),
		OrderID:    order.ID,
		ProductKey: key.String(),
		Progress:   progress,
	}
	return msg, nil
}

// SendProgressNotification resolves the message and hands it to the mailer.
// Dispatch is best-effort: a transport failure is reported to the caller but
// never retried and never rolls back any order state.
func (s *NotificationService) SendProgressNotification(ctx context.Context, in ProgressNotificationInput) (*ProgressMessage, error) {
	msg, err := s.ResolveProgressMessage(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, msg.To, msg.Subject, msg.HTML); err != nil {
		s.logger.Error("progress notification dispatch failed",
			zap.String("order_id", msg.OrderID),
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	s.logger.Info("progress notification sent",
		zap.String("order_id", msg.OrderID),
		zap.String("product_key", msg.ProductKey),
		zap.Int("progress", msg.Progress),
	)
	return msg, nil
}

func progressSubject(shortID string, articleIndex, progress int) string {
	article := ""
	if articleIndex > 0 {
		article = fmt.Sprintf(" (Article #%d)", articleIndex)
	}
	if progress == 100 {
		return fmt.Sprintf("Commande %s%s – Votre création est prête !", shortID, article)
	}
	return fmt.Sprintf("Commande %s%s – Suivi de la confection artisanale (%d%%)", shortID, article, progress)
}

func progressBody(customerName, shortID, title, colorLabel string, articleIndex, progress int) string {
	articleFr := ""
	articleAr := ""
	if articleIndex > 0 {
		articleFr = fmt.Sprintf(" (Article #%d)", articleIndex)
		articleAr = fmt.Sprintf(" (المقالة رقم %d)", articleIndex)
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">`)

	fmt.Fprintf(&b, "<p><strong>Cher %s</strong>,</p>", customerName)
	fmt.Fprintf(&b, "<p>Nous avons le plaisir de vous informer que la création artisanale que notre atelier est en train de confectionner pour vous – <strong>%s</strong> (Couleur : <strong>%s</strong>)%s, dans la <strong>commande n°%s</strong> – est actuellement <strong>terminée à %d%%</strong>.</p>",
		title, colorLabel, articleFr, shortID, progress)
	if progress == 100 {
		b.WriteString("<p><strong>Bonne nouvelle !</strong> Votre article est maintenant <strong>entièrement terminé</strong> et est <strong>prêt pour la livraison ou le retrait en boutique</strong>.</p>")
	} else {
		b.WriteString("<p>Nous vous tiendrons informé dès que l'article sera entièrement terminé et prêt.</p>")
	}
	b.WriteString("<p>Merci pour votre confiance,<br/><strong>L’équipe Wahret Zmen</strong></p>")

	b.WriteString(`<hr style="margin: 2rem 0;" />`)

	fmt.Fprintf(&b, `<p dir="rtl"><strong>عزيزي %s</strong>،</p>`, customerName)
	fmt.Fprintf(&b, `<p dir="rtl">يسرنا أن نبلغك أن القطعة الحرفية التي نقوم بتفصيلها لك في ورشتنا – <strong>%s</strong> (اللون: <strong>%s</strong>)%s، ضمن <strong>الطلب رقم %s</strong> – وصلت حاليًا إلى <strong>%d٪</strong> من مرحلة الإنجاز.</p>`,
		title, colorLabel, articleAr, shortID, progress)
	if progress == 100 {
		b.WriteString(`<p dir="rtl"><strong>خبر سار!</strong> لقد اكتملت القطعة بالكامل، وهي <strong>جاهزة للتسليم أو الاستلام من المتجر</strong>.</p>`)
	} else {
		b.WriteString(`<p dir="rtl">سنقوم بإبلاغك فور الانتهاء الكامل من تفصيل القطعة وتجهيزها.</p>`)
	}
	b.WriteString(`<p dir="rtl">شكراً لثقتك بنا،<br/><strong>فريق وهرة الزمن</strong></p>`)

	b.WriteString("</div>")
	return b.String()
}
