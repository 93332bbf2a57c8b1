package main

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "reviewdesk/agent/contract"
	intentx "reviewdesk/agent/intent"
	llmx "reviewdesk/agent/llm"
	promptx "reviewdesk/agent/prompt"
	reviewx "reviewdesk/agent/review"
	routerx "reviewdesk/agent/router"
	runnerx "reviewdesk/agent/runner"
	toolx "reviewdesk/agent/tool"
	"reviewdesk/api"
	configx "reviewdesk/pkg/config"
	logx "reviewdesk/pkg/logger"
	mailerx "reviewdesk/pkg/mailer"
	ollamax "reviewdesk/pkg/ollama"
)

type AppConfig struct {
	ReviewsCSV string `envconfig:"REVIEWS_CSV" split_words:"true" default:"realistic_restaurant_reviews.csv"`
	ListenAddr string `envconfig:"LISTEN_ADDR" split_words:"true" default:":8000"`
}

const (
	reviewAgentIterations = 10
	mailAgentIterations   = 1
)

func main() {
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	appCfg := configx.MustNew[AppConfig]("")
	llmCfg := configx.MustNew[llmx.Config]("OLLAMA")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}
	smtpCfg := configx.MustNew[mailerx.Config]("SMTP")

	store, err := reviewx.Load(appCfg.ReviewsCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", appCfg.ReviewsCSV).Msg("load review table")
	}
	log.Info().Int("reviews", store.Len()).Msg("review table loaded")

	ctx := context.Background()
	prompts := promptx.LoadPromptSet()

	reviewAgent, err := buildReviewAgent(ctx, *llmCfg, prompts, store)
	if err != nil {
		log.Fatal().Err(err).Msg("build review agent")
	}

	mailAgent, err := buildMailAgent(ctx, *llmCfg, prompts, mailerx.MustNew(*smtpCfg))
	if err != nil {
		log.Fatal().Err(err).Msg("build mail agent")
	}

	classifier, err := buildClassifier(*llmCfg, prompts)
	if err != nil {
		log.Fatal().Err(err).Msg("build intent classifier")
	}

	smartRouter, err := routerx.New(classifier, reviewAgent, mailAgent)
	if err != nil {
		log.Fatal().Err(err).Msg("build smart router")
	}

	handler := api.NewHandler(reviewAgent, mailAgent, smartRouter)
	srv := api.NewRouter(handler).Build(appCfg.ListenAddr)

	log.Info().Str("addr", appCfg.ListenAddr).Msg("starting http server")
	srv.Spin()
}

func buildReviewAgent(
	ctx context.Context,
	llmCfg llmx.Config,
	prompts promptx.PromptSet,
	store *reviewx.Store,
) (contractx.Runner, error) {
	registry := toolx.NewReviewRegistry(store)

	modelCfg := llmCfg.OllamaFor(contractx.AgentTypeReview)
	chatModel, err := modelCfg.New(ctx)
	if err != nil {
		return nil, err
	}

	systemPrompt := promptx.Fill(prompts.Review, map[string]string{
		"tools": registry.Catalog(),
	})
	completer, err := runnerx.NewModelCompleter(ctx, chatModel, systemPrompt, "review_agent.completion_graph")
	if err != nil {
		return nil, err
	}

	return runnerx.New(completer, registry, reviewAgentIterations)
}

func buildMailAgent(
	ctx context.Context,
	llmCfg llmx.Config,
	prompts promptx.PromptSet,
	mailClient *mailerx.Client,
) (contractx.Runner, error) {
	registry := toolx.NewMailRegistry(mailClient)

	modelCfg := llmCfg.OllamaFor(contractx.AgentTypeMail)
	chatModel, err := modelCfg.New(ctx)
	if err != nil {
		return nil, err
	}

	systemPrompt := promptx.Fill(prompts.Mail, map[string]string{
		"tools": registry.Catalog(),
	})
	completer, err := runnerx.NewModelCompleter(ctx, chatModel, systemPrompt, "mail_agent.completion_graph")
	if err != nil {
		return nil, err
	}

	return runnerx.New(completer, registry, mailAgentIterations)
}

func buildClassifier(llmCfg llmx.Config, prompts promptx.PromptSet) (contractx.Classifier, error) {
	modelCfg := llmCfg.OllamaFor(contractx.AgentTypeIntent)

	sdkClient, err := intentx.NewSDKClient(ollamax.NewClient(modelCfg), modelCfg.Model)
	if err != nil {
		return nil, err
	}
	return intentx.NewClassifier(sdkClient, prompts.Intent)
}
