package bot

import (
	"drawbot/commands"
	"drawbot/utils"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	guilds, err := b.Session.UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("Could not fetch guilds: %v", err)
		guilds = nil
	}

	if !b.GetConfig().DisableCommandUnregister {
		log.Println("Unregistering all commands from all guilds...")
		for _, guild := range guilds {
			b.UnregisterCommands(guild.ID)
		}
	}

	log.Println("Registering commands for all guilds...")
	b.RegisteredCommands = make([]*discordgo.ApplicationCommand, 0)
	for _, guild := range guilds {
		b.RefreshCommands(guild.ID)
	}

	if err := b.GetScheduler().Start(); err != nil {
		log.Printf("Scheduler disabled: %v", err)
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.GetConfig().LogChannelID, "System", "Startup", "Daily drawing bot has started successfully.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// RefreshCommands overwrites a guild's slash commands with the current set.
func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, guildID, cmds)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", guildID, err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registeredCmds...)
}

// UnregisterCommands removes every slash command from a guild.
func (b *Bot) UnregisterCommands(guildID string) {
	_, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, guildID, []*discordgo.ApplicationCommand{})
	if err != nil {
		log.Printf("cannot unregister commands for guild '%s': %v", guildID, err)
	}
}
