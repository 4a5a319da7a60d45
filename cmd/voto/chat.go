package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/chat"
	"github.com/poiesic/voto/render"
	"github.com/poiesic/voto/tui"
)

func (d *deps) configCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	prober, err := d.newProber()
	if err != nil {
		return err
	}
	_, err = d.configure(c, e, prober)
	return err
}

// configure selects a provider, fills in what it still needs and saves the
// config. Flags answer questions up front; anything missing is asked.
func (d *deps) configure(c *cli.Context, e *env, prober ai.Prober) (ai.Provider, error) {
	cfg := e.ws.AIConfig()
	e.printer.ConfigHeader()

	var provider ai.Provider
	if name := c.String("provider"); name != "" {
		p, err := ai.ParseProvider(name)
		if err != nil {
			return "", err
		}
		provider = p
	} else {
		choices := make([]string, len(ai.Providers))
		for i, p := range ai.Providers {
			choices[i] = e.printer.ProviderChoice(p, prober.Available(c.Context, cfg, p))
		}
		i, err := e.choose("¿Qué LLM querés usar?", choices)
		if err != nil {
			return "", err
		}
		provider = ai.Providers[i]
	}
	cfg.Provider = provider

	if key := c.String("key"); key != "" {
		cfg.SetAPIKey(provider, key)
	}
	if provider.Info().RequiresKey && !cfg.HasAPIKey(provider) {
		key, err := e.ask(fmt.Sprintf("Ingresá tu API Key de %s: ", provider.Info().Name))
		if err != nil {
			return "", err
		}
		cfg.SetAPIKey(provider, key)
	}
	if u := c.String("base-url"); u != "" {
		cfg.Ollama.BaseURL = u
	}

	switch {
	case c.String("model") != "":
		cfg.SetModel(provider, c.String("model"))
	case provider == ai.Ollama:
		models, err := prober.ListModels(c.Context, cfg)
		if err != nil || len(models) == 0 {
			e.printer.NoModels()
			break
		}
		i, err := e.choose("Elegí el modelo:", models)
		if err != nil {
			return "", err
		}
		cfg.SetModel(ai.Ollama, models[i])
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if err := ai.Save(e.configPath, cfg); err != nil {
		return "", fmt.Errorf("saving config: %w", err)
	}
	e.printer.ConfigSaved(provider, e.configPath)
	return provider, nil
}

func (d *deps) chatCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	prober, err := d.newProber()
	if err != nil {
		return err
	}
	cfg := e.ws.AIConfig()
	if cfg.Provider == "" {
		e.printer.ConfiguringFirst()
		if _, err := d.configure(c, e, prober); err != nil {
			return err
		}
	}
	if !prober.Available(c.Context, cfg, cfg.Provider) {
		e.printer.Unavailable(cfg.Provider)
		return nil
	}

	model, err := d.newModel(c.Context, e.ws)
	if err != nil {
		e.printer.Failure(err)
		return nil
	}
	session, err := e.ws.NewSession(model)
	if err != nil {
		return err
	}

	if c.Bool("tui") {
		return tui.Run(c.Context, session, cfg.Provider)
	}

	e.printer.ChatBanner(cfg.Provider)
	for {
		input, err := e.ask(e.printer.Prompt())
		if errors.Is(err, errNoInput) || (err == nil && chat.IsExit(input)) {
			e.printer.Farewell()
			return nil
		}
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}

		reply, err := session.Send(c.Context, input)
		if err != nil {
			e.printer.Failure(err)
			continue
		}
		e.printer.Reply(render.SessionReplyHeader, reply)
	}
}

func (d *deps) askCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.ws.AIConfig()
	if cfg.Provider == "" {
		e.printer.NotConfigured()
		return nil
	}
	prober, err := d.newProber()
	if err != nil {
		return err
	}
	if !prober.Available(c.Context, cfg, cfg.Provider) {
		e.printer.Unavailable(cfg.Provider)
		return nil
	}
	retriever, err := e.ws.NewRetriever()
	if err != nil {
		return err
	}
	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}

	model, err := d.newModel(c.Context, e.ws)
	if err != nil {
		e.printer.Failure(err)
		return nil
	}
	reply, err := chat.Ask(c.Context, model, retriever, kb, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		e.printer.Failure(err)
		return nil
	}
	e.printer.Reply(render.AskReplyHeader, reply)
	return nil
}
