package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zenith-sms/zenith/internal/domain/school"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage the student registry",
}

var (
	studentName    string
	studentClass   string
	studentRollNo  string
	studentFather  string
	studentContact string
)

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student to the live registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if studentName == "" {
			return fmt.Errorf("--name is required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		student := school.Student{
			ID:            school.NewRecordID(),
			Name:          studentName,
			Class:         studentClass,
			RollNo:        studentRollNo,
			FatherName:    studentFather,
			ParentContact: studentContact,
			Status:        school.StatusStudying,
		}

		if err := app.reg.Students.Update(func(prev []school.Student) []school.Student {
			return append(prev, student)
		}); err != nil {
			return err
		}
		app.recordActivity("Student Added", fmt.Sprintf("%s enrolled in class %s.", student.Name, student.Class))

		fmt.Printf("Added %s %s\n", nameStyle.Render(student.Name), dimStyle.Render(fmt.Sprintf("#%d", student.ID)))
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students in the live registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		students := app.reg.Students.Get()
		if len(students) == 0 {
			fmt.Println("No students in the live registry.")
			return nil
		}

		for _, s := range students {
			fmt.Printf("%s  %s %s\n",
				dimStyle.Render(fmt.Sprintf("#%d", s.ID)),
				nameStyle.Render(s.Name),
				dimStyle.Render(fmt.Sprintf("class %s, roll no %s, %s", s.Class, s.RollNo, s.Status)),
			)
		}
		fmt.Printf("%d students\n", len(students))
		return nil
	},
}

func init() {
	studentAddCmd.Flags().StringVar(&studentName, "name", "", "Student name (required)")
	studentAddCmd.Flags().StringVar(&studentClass, "class", "", "Class")
	studentAddCmd.Flags().StringVar(&studentRollNo, "roll-no", "", "Roll number")
	studentAddCmd.Flags().StringVar(&studentFather, "father", "", "Father name")
	studentAddCmd.Flags().StringVar(&studentContact, "contact", "", "Parent contact")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	rootCmd.AddCommand(studentCmd)
}
