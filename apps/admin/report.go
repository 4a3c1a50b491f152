package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/agenda/core/task"
)

func (cli *commandLine) gpa() error {
	rep := cli.store.GradeReport()
	if len(rep.Grades) == 0 {
		_, err := fmt.Fprintln(cli.out, "no grades yet")
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBJECT\tGRADES\tAVERAGE\tGPA")
	for _, s := range rep.Subjects {
		fmt.Fprintf(w, "%s\t%d\t%.1f%% (%s)\t%.1f\n", s.Subject, s.Count, s.Percentage, s.Band, s.GPA)
	}
	fmt.Fprintf(w, "\nOVERALL\t\t\t%.2f (%s)\n", rep.OverallGPA, rep.GPABand)
	if rep.Progress.Valid {
		fmt.Fprintf(w, "TARGET\t\t\t%.2f (%.0f%%)\n", rep.TargetGPA.Float64, rep.Progress.Float64)
	}
	return w.Flush()
}

func (cli *commandLine) due() error {
	notifs := cli.store.Notifications(cli.now())
	if len(notifs) == 0 {
		_, err := fmt.Fprintln(cli.out, "nothing due this week")
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tDUE\tTASK")
	for _, n := range notifs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.Type, task.DateKey(n.DueDate), n.Message)
	}
	return w.Flush()
}
