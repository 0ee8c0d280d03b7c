package infra

import "context"

// Mailer delivers a formatted message to an address. Dispatch failures are
// the caller's to report; there is no retry at this layer.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Translator converts free text between the storefront languages. It is only
// consulted at product-authoring time.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

var (
	_ Mailer     = (*SMTPMailer)(nil)
	_ Translator = (*TranslationClient)(nil)
)
