// Package tui is a full-screen chat front end for a chat.Session.
package tui
