// Command memberview prints all registered members from the portal's SQLite
// database as a fixed-width table. It is a companion read-only viewer; it
// never writes to the database.
//
// The database file defaults to members.db and can be overridden with the
// MEMBERPORTAL_DATABASE_PATH environment variable.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	memberstore "github.com/jcollier/memberportal/internal/app/store/members"
	"github.com/jcollier/memberportal/internal/domain/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	path := os.Getenv("MEMBERPORTAL_DATABASE_PATH")
	if path == "" {
		path = "members.db"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("Database not found. Run the portal first to create it.")
		os.Exit(1)
	}

	if err := run(path); err != nil {
		fmt.Fprintln(os.Stderr, "error reading database:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	store := memberstore.New(db)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tSurname\tMobile\tEmail\tRegistered")

	total := 0
	err = store.Each(context.Background(), func(m models.Member) error {
		total++
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Surname, m.Mobile, m.Email,
			m.RegistrationDate.Format("2006-01-02"))
		return nil
	})
	if err != nil {
		return err
	}

	if total == 0 {
		fmt.Println("No members registered yet.")
		return nil
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nTotal members: %d\n", total)
	return nil
}
