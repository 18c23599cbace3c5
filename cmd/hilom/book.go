package main

import (
	"fmt"
	"time"

	"github.com/mrsinham/hilom/cmd/hilom/wizard"
	"github.com/mrsinham/hilom/internal/booking"
	"github.com/mrsinham/hilom/internal/catalog"
	"github.com/mrsinham/hilom/internal/logging"
	"github.com/spf13/cobra"
)

func bookCmd(configFile *string) *cobra.Command {
	var answersFile, saveAnswers string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment with a doctor",
		Long: `Book an appointment with a doctor.

Without --answers an interactive wizard walks through location, hospital,
doctor, personal details, schedule and consultation type. With --answers the
same steps are read from a YAML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if answersFile != "" {
				answers, err := wizard.LoadAnswers(answersFile)
				if err != nil {
					return err
				}

				now := time.Now()
				m := booking.NewMachine(catalog.Default(), a.sink(), booking.WithClock(func() time.Time { return now }))
				appt, err := wizard.RunAnswers(ctx, m, answers, now)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, appt.Summary())
				return nil
			}

			outcome, err := wizard.Run(ctx, wizard.Deps{
				Catalog: catalog.Default(),
				Saver:   a.sink(),
				Logger:  logging.Component("wizard"),
			})
			if err != nil {
				return err
			}
			if !outcome.Booked {
				fmt.Fprintln(out, "Booking cancelled.")
				return nil
			}

			fmt.Fprintln(out, outcome.Appointment.Summary())
			if saveAnswers != "" {
				if err := wizard.SaveAnswers(saveAnswers, outcome.Answers); err != nil {
					return err
				}
				fmt.Fprintf(out, "Answers saved to %s\n", saveAnswers)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "Book without the wizard, from a YAML answers file")
	cmd.Flags().StringVar(&saveAnswers, "save-answers", "", "After booking, save the answers to a YAML file")

	return cmd
}
