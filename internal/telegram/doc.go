// Package telegram formats the daily digest and posts it through the Telegram Bot API.
//
// The client wraps gopkg.in/telebot.v4 in offline mode: it never calls getMe or
// polls for updates, it only issues a single sendMessage per run.
//
// Authentication requires a bot token (from @BotFather) and a chat ID. The chat
// ID may be numeric or a public channel username such as "@dhakadaily".
package telegram
