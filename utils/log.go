package utils

import (
	"github.com/bwmarrin/discordgo"
)

type LogLevel string

const (
	Info  LogLevel = "INFO"
	Warn  LogLevel = "WARN"
	Error LogLevel = "ERROR"
)

func getColor(level LogLevel) int {
	switch level {
	case Info:
		return 3066993 // Green
	case Warn:
		return 15105570 // Orange
	case Error:
		return 15158332 // Red
	default:
		return 3447003 // Blue
	}
}

func sendLog(s *discordgo.Session, logChannelID string, level LogLevel, module, operation, extraInfo string) error {
	if logChannelID == "" {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: string(level) + " Log",
		Color: getColor(level),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module},
			{Name: "Operation", Value: operation},
			{Name: "Details", Value: extraInfo},
		},
	}

	_, err := s.ChannelMessageSendEmbed(logChannelID, embed)
	return err
}

func LogInfo(s *discordgo.Session, logChannelID, module, operation, extraInfo string) error {
	return sendLog(s, logChannelID, Info, module, operation, extraInfo)
}

func LogWarn(s *discordgo.Session, logChannelID, module, operation, extraInfo string) error {
	return sendLog(s, logChannelID, Warn, module, operation, extraInfo)
}

func LogError(s *discordgo.Session, logChannelID, module, operation, extraInfo string) error {
	return sendLog(s, logChannelID, Error, module, operation, extraInfo)
}
