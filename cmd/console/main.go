// console is a terminal front-end for the employee records API. It
// drives the same form and list/edit state containers a browser UI
// would, which makes it handy for exercising a running server end to
// end without one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/empresa-hr/employee-records-backend/internal/models"
	"github.com/empresa-hr/employee-records-backend/internal/ui"
	"github.com/empresa-hr/employee-records-backend/pkg/client"
	"github.com/empresa-hr/employee-records-backend/pkg/validator"
)

func main() {
	var baseURL string
	flag.StringVar(&baseURL, "server", "http://localhost:5000", "base URL of the employee records API")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetOutput(os.Stdout)

	api := client.New(baseURL)
	notifier := ui.NewLogNotifier(logger)

	form := ui.NewFormState(validator.NewPhoneValidator(), notifier)

	var list *ui.ListState
	refresh := func() error {
		list.SetLoading(true)
		defer list.SetLoading(false)
		employees, err := api.ListEmployees()
		if err != nil {
			return err
		}
		list.SetEmployees(employees)
		return nil
	}
	list = ui.NewListState(refresh, notifier)

	in := bufio.NewScanner(os.Stdin)
	fmt.Println("Employee Management System console. Type 'help' for commands.")

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		parts := strings.Fields(in.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			printHelp()
		case "list":
			if err := refresh(); err != nil {
				logger.Errorf("Failed to fetch employees: %v", err)
				continue
			}
			printEmployees(list.Employees)
		case "add":
			runAddForm(in, form, api)
		case "edit":
			if len(parts) < 2 {
				fmt.Println("usage: edit <employee_id>")
				continue
			}
			if emp, ok := findEmployee(list.Employees, parts[1]); ok {
				list.Edit(emp)
				fmt.Printf("Editing %s. Use 'set <field> <value>', then 'save' or 'cancel'.\n", emp.EmployeeID)
			} else {
				fmt.Println("No such employee in the last fetched list. Run 'list' first.")
			}
		case "set":
			if len(parts) < 3 {
				fmt.Println("usage: set <field> <value>")
				continue
			}
			if list.Editing() == nil {
				fmt.Println("Not editing. Use 'edit <employee_id>' first.")
				continue
			}
			list.Change(parts[1], strings.Join(parts[2:], " "))
		case "save":
			list.Save(api)
		case "cancel":
			list.Cancel()
			fmt.Println("Edit cancelled.")
		case "delete":
			if len(parts) < 2 {
				fmt.Println("usage: delete <employee_id>")
				continue
			}
			emp, ok := findEmployee(list.Employees, parts[1])
			if !ok {
				fmt.Println("No such employee in the last fetched list. Run 'list' first.")
				continue
			}
			list.Delete(api, emp, func(e models.Employee) bool {
				fmt.Printf("Are you sure you want to delete %s (%s)? [y/N] ", e.Name, e.EmployeeID)
				if !in.Scan() {
					return false
				}
				answer := strings.ToLower(strings.TrimSpace(in.Text()))
				return answer == "y" || answer == "yes"
			})
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", parts[0])
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  list                     fetch and print all employees
  add                      fill in the add-employee form
  edit <employee_id>       start editing a row
  set <field> <value>      change a draft field (name, email, phone_number,
                           department, date_of_joining, role)
  save                     submit the draft
  cancel                   discard the draft
  delete <employee_id>     delete after confirmation
  quit                     exit`)
}

// runAddForm walks through the form fields, then submits. Validation
// errors are printed per field and nothing is sent until they pass.
func runAddForm(in *bufio.Scanner, form *ui.FormState, api ui.EmployeeCreator) {
	prompts := []struct {
		field, label string
	}{
		{"name", "Name"},
		{"employee_id", "Employee ID"},
		{"email", "Email"},
		{"country_code", fmt.Sprintf("Country code (default %s)", ui.DefaultCountryCode)},
		{"phone_number", "Phone number"},
		{"department", "Department (" + strings.Join(ui.Departments, ", ") + ")"},
		{"date_of_joining", "Date of joining (YYYY-MM-DD)"},
		{"role", "Role"},
	}

	for _, p := range prompts {
		fmt.Printf("%s: ", p.label)
		if !in.Scan() {
			return
		}
		value := strings.TrimSpace(in.Text())
		if value == "" && p.field == "country_code" {
			continue // keep default
		}
		form.SetField(p.field, value)
	}

	if !form.Submit(api) {
		for field, msg := range form.Errors {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		if form.Message != "" {
			fmt.Println(form.Message)
		}
		return
	}
	fmt.Println(form.Message)
}

func findEmployee(employees []models.Employee, employeeID string) (models.Employee, bool) {
	for _, e := range employees {
		if e.EmployeeID == employeeID {
			return e, true
		}
	}
	return models.Employee{}, false
}

func printEmployees(employees []models.Employee) {
	if len(employees) == 0 {
		fmt.Println("No employees.")
		return
	}
	fmt.Printf("%-20s %-12s %-28s %-12s %-12s %-12s\n", "Name", "Employee ID", "Email", "Department", "Joined", "Role")
	for _, e := range employees {
		joined := ""
		if e.DateOfJoining.Valid {
			joined = e.DateOfJoining.Time.Format(models.DateFormat)
		}
		fmt.Printf("%-20s %-12s %-28s %-12s %-12s %-12s\n",
			e.Name, e.EmployeeID, e.Email, e.Department.String, joined, e.Role.String)
	}
}
