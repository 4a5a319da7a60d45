// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto"
	"github.com/poiesic/voto/ai"
	"github.com/poiesic/voto/ai/llm"
	"github.com/poiesic/voto/render"
)

// deps are the collaborators a command reaches outside the workspace.
type deps struct {
	in  io.Reader
	out io.Writer

	newProber func() (ai.Prober, error)
	newModel  func(ctx context.Context, ws *voto.Workspace) (ai.ChatModel, error)
}

func defaultDeps() *deps {
	return &deps{
		in:  os.Stdin,
		out: os.Stdout,
		newProber: func() (ai.Prober, error) {
			return llm.NewProber(llm.WithLogger(slog.Default()))
		},
		newModel: func(ctx context.Context, ws *voto.Workspace) (ai.ChatModel, error) {
			m, err := ws.NewChatModel(ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	if err := newApp(defaultDeps()).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(d *deps) *cli.App {
	return &cli.App{
		Name:      "voto",
		Usage:     "🗳️  Voto Informado CR 2026 - Investigá a los candidatos",
		Reader:    d.in,
		Writer:    d.out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"L"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "data",
				Usage:   "Data directory holding knowledge-base.json and processed/",
				Value:   voto.DefaultDataDir,
				EnvVars: []string{"VOTO_DATA"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Provider config file (default ./voto.yaml, then ~/.config/voto/config.yaml)",
				EnvVars: []string{"VOTO_CONFIG"},
			},
		},
		Before:   setupLogger,
		Commands: commands(d),
	}
}

func commands(d *deps) []*cli.Command {
	return []*cli.Command{
		{
			Name:    "candidatos",
			Aliases: []string{"c"},
			Usage:   "Listar todos los candidatos presidenciales",
			Action:  d.candidatesCommand,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "detalle", Aliases: []string{"d"}, Usage: "Mostrar información detallada"},
			},
		},
		{
			Name:    "temas",
			Aliases: []string{"t"},
			Usage:   "Ver temas más discutidos en las entrevistas",
			Action:  d.topicsCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "Número de temas a mostrar", Value: 15},
			},
		},
		{
			Name:      "perfil",
			Aliases:   []string{"p"},
			Usage:     "Ver perfil completo de un candidato (usar siglas: PLN, PUSC, CAC, etc.)",
			ArgsUsage: "<candidato>",
			Action:    d.profileCommand,
		},
		{
			Name:      "comparar",
			Aliases:   []string{"vs"},
			Usage:     "Comparar dos candidatos por temas",
			ArgsUsage: "<candidato1> <candidato2>",
			Action:    d.compareCommand,
		},
		{
			Name:      "buscar",
			Aliases:   []string{"b"},
			Usage:     "Buscar un término en todas las entrevistas",
			ArgsUsage: "<termino>",
			Action:    d.searchCommand,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "candidato", Aliases: []string{"c"}, Usage: "Filtrar por candidato"},
				&cli.BoolFlag{Name: "sin-acentos", Usage: "Ignorar tildes al comparar"},
			},
		},
		{
			Name:      "leer",
			Aliases:   []string{"l"},
			Usage:     "Leer el contenido de una entrevista",
			ArgsUsage: "<documento>",
			Action:    d.readCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "lineas", Aliases: []string{"l"}, Usage: "Número de líneas a mostrar", Value: 50},
			},
		},
		{
			Name:    "explorar",
			Aliases: []string{"x"},
			Usage:   "Modo interactivo para explorar candidatos",
			Action:  d.exploreCommand,
		},
		{
			Name:    "quiz",
			Aliases: []string{"q"},
			Usage:   "Descubrí qué candidatos se alinean más con vos",
			Action:  d.quizCommand,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "answers", Usage: "Respuestas como clave=valor,clave=valor (sin preguntas)"},
			},
		},
		{
			Name:      "espectro",
			Aliases:   []string{"e"},
			Usage:     "Ver el espectro político de los partidos (izquierda ◄─► derecha)",
			ArgsUsage: "[partido1] [partido2]",
			Action:    d.spectrumCommand,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "detalle", Aliases: []string{"d"}, Usage: "Mostrar descripción detallada de cada partido"},
			},
		},
		{
			Name:   "config",
			Usage:  "Configurar el modelo de lenguaje (Ollama, OpenAI, Claude, Gemini)",
			Action: d.configCommand,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "provider", Usage: "ollama, openai, anthropic o gemini"},
				&cli.StringFlag{Name: "key", Usage: "API key del proveedor"},
				&cli.StringFlag{Name: "model", Usage: "Modelo a usar"},
				&cli.StringFlag{Name: "base-url", Usage: "URL del servidor Ollama"},
			},
		},
		{
			Name:   "chat",
			Usage:  "Chatear con el asistente IA sobre los candidatos",
			Action: d.chatCommand,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "tui", Usage: "Usar la interfaz de pantalla completa"},
			},
		},
		{
			Name:      "ask",
			Aliases:   []string{"a"},
			Usage:     "Hacer una pregunta rápida al asistente IA",
			ArgsUsage: "<pregunta...>",
			Action:    d.askCommand,
		},
		{
			Name:   "build-kb",
			Usage:  "Construir la knowledge base a partir de las transcripciones procesadas",
			Action: d.buildCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "workers", Usage: "Number of concurrent workers (default: NumCPU/2)"},
			},
		},
		{
			Name:   "procesar",
			Usage:  "Convertir subtítulos WebVTT en transcripciones de texto",
			Action: d.processCommand,
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// env is what every command works with.
type env struct {
	ws         *voto.Workspace
	configPath string
	printer    *render.Printer
	input      *bufio.Reader
}

func (d *deps) open(c *cli.Context) (*env, error) {
	cfg, path, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	ws, err := voto.OpenWorkspace(c.String("data"), voto.WithAIConfig(cfg), voto.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("opening workspace: %w", err)
	}
	return &env{
		ws:         ws,
		configPath: path,
		printer:    render.New(c.App.Writer),
		input:      bufio.NewReader(c.App.Reader),
	}, nil
}

func (e *env) Close() {
	if err := e.ws.Close(); err != nil {
		slog.Error("error closing workspace", "err", err)
	}
}

func loadConfig(path string) (*ai.Config, string, error) {
	if path == "" {
		return ai.LoadDefault()
	}
	cfg, err := ai.Load(path)
	return cfg, path, err
}
