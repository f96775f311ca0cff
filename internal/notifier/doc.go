// Package notifier delivers the rendered daily message.
//
// TelegramNotifier posts it through the Bot API. DryRunNotifier writes a
// plain-text preview instead, which is what `send --dry-run` uses.
package notifier
