package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/fadilmartias/cv-matcher/internal/database"
	"github.com/fadilmartias/cv-matcher/internal/logger"
	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const app = "matchctl"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "matchctl scores resumes against jobs from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
}

// deps holds what the subcommands need; build it with newDeps or inject it in tests.
type deps struct {
	matches *usecase.MatchUsecase
	ranking *usecase.RankingUsecase
	log     *zap.Logger
}

// depsFactory is replaced in tests.
var depsFactory = func(ctx context.Context) (*deps, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	db, err := database.Connect(config.LoadDBConfig(), config.LoadAppConfig(), zlog)
	if err != nil {
		return nil, err
	}
	return newDeps(db, zlog), nil
}

func newDeps(db *gorm.DB, zlog *zap.Logger) *deps {
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	reportRepo := repository.NewMatchReportRepository(db)

	normalizer := matching.NewNormalizer(matching.DefaultVocabulary())
	ranker := matching.NewRanker(normalizer)
	scorer := matching.NewScorer(normalizer)

	return &deps{
		matches: usecase.NewMatchUsecase(db, jobRepo, resumeRepo, reportRepo, ranker, scorer, zlog),
		ranking: usecase.NewRankingUsecase(jobRepo, resumeRepo, ranker, scorer, zlog),
		log:     zlog,
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
