package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/data/aggregator"
	"github.com/hydralog/go-water-monitor/internal/util"
)

var (
	recommendWeight   float64
	recommendActivity string
	recommendClimate  string

	recommendReminders bool
	recommendWake      string
	recommendSleep     string
	recommendInterval  int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a daily intake amount",
	Long: `Recommend a daily intake amount from body weight, activity level and
climate, and optionally a reminder schedule across the waking day.

Examples:
  go-water-monitor recommend --weight 70
  go-water-monitor recommend --weight 70 --activity active --climate hot
  go-water-monitor recommend --weight 70 --reminders --wake 07:00 --sleep 23:00 --interval 2`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().Float64VarP(&recommendWeight, "weight", "w", 0,
		"Body weight in kilograms")
	recommendCmd.Flags().StringVar(&recommendActivity, "activity", "sedentary",
		"Activity level (sedentary, moderate, active)")
	recommendCmd.Flags().StringVar(&recommendClimate, "climate", "temperate",
		"Climate (cold, temperate, hot)")
	recommendCmd.Flags().BoolVar(&recommendReminders, "reminders", false,
		"Also print a reminder schedule")
	recommendCmd.Flags().StringVar(&recommendWake, "wake", "07:00",
		"Wake time for the reminder schedule (HH:MM)")
	recommendCmd.Flags().StringVar(&recommendSleep, "sleep", "23:00",
		"Sleep time for the reminder schedule (HH:MM)")
	recommendCmd.Flags().IntVar(&recommendInterval, "interval", 2,
		"Hours between reminders")
	recommendCmd.MarkFlagRequired("weight")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendWeight <= 0 {
		return fmt.Errorf("--weight must be positive, got %v", recommendWeight)
	}

	amount := aggregator.RecommendedDailyAmount(recommendWeight, recommendActivity, recommendClimate)

	fmt.Printf("%s\n", util.FormatHeaderTitle("💧 Recommendation"))
	fmt.Printf("  %s per day for %v kg, %s activity, %s climate\n",
		util.FormatVolume(float64(amount)),
		recommendWeight,
		strings.ToLower(recommendActivity),
		strings.ToLower(recommendClimate),
	)
	fmt.Printf("  That is %.1f cups of %v ml, or %v L\n",
		util.MlToCups(float64(amount), constants.DefaultCupSizeMl),
		constants.DefaultCupSizeMl,
		util.MlToLiters(float64(amount)),
	)

	if !recommendReminders {
		return nil
	}

	times, err := aggregator.ReminderTimes(recommendWake, recommendSleep, recommendInterval)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		fmt.Println("\n  No reminder slots between wake and sleep")
		return nil
	}

	perReminder := float64(amount) / float64(len(times))
	fmt.Printf("\n%s  about %s each\n",
		util.FormatDataTitle("Reminders"), util.FormatVolume(perReminder))
	fmt.Printf("  %s\n", strings.Join(times, "  "))
	return nil
}
