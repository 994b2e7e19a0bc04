package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/store"
)

func companiesCommand() *cobra.Command {
	companiesCmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage tracked companies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	companiesCmd.AddCommand(&cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import companies from a CSV file",
		Long: `Import companies from a CSV file with a header row. Recognized
columns: name (or company), domain, website, aliases. Aliases are
comma-separated inside the cell. Existing companies matched by name are
updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			imported, err := importCompaniesCSV(cmd.Context(), store.NewCompanyRepository(db), args[0], log)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d companies\n", imported)
			return nil
		},
	})

	companiesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active companies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			companies, err := store.NewCompanyRepository(db).ListActive(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range companies {
				line := fmt.Sprintf("%d\t%s", c.ID, c.Name)
				if len(c.Aliases) > 0 {
					line += "\t(" + strings.Join(c.Aliases, ", ") + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	})

	return companiesCmd
}

// companyUpserter is the slice of the repository the importer needs.
type companyUpserter interface {
	Upsert(ctx context.Context, company *domain.Company) error
}

// importCompaniesCSV reads a CSV file and upserts each row. Column names
// are matched case-insensitively with a few accepted spellings.
func importCompaniesCSV(ctx context.Context, repo companyUpserter, path string, log logger.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	cols := columnIndexes(header)
	if cols.name < 0 {
		return 0, fmt.Errorf("csv needs a 'name' or 'company' column, found: %v", header)
	}

	imported := 0
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return imported, fmt.Errorf("read csv row: %w", readErr)
		}

		company := rowToCompany(record, cols)
		if company == nil {
			continue
		}

		if upsertErr := repo.Upsert(ctx, company); upsertErr != nil {
			log.Warn("failed to import company",
				logger.String("name", company.Name),
				logger.Error(upsertErr))
			continue
		}
		imported++
	}
	return imported, nil
}

type columns struct {
	name    int
	domain  int
	website int
	aliases int
}

func columnIndexes(header []string) columns {
	cols := columns{name: -1, domain: -1, website: -1, aliases: -1}
	for i, raw := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))) {
		case "name", "company", "company_name":
			cols.name = i
		case "domain", "email_domain":
			cols.domain = i
		case "website", "url", "company_url":
			cols.website = i
		case "aliases", "alias", "other_names":
			cols.aliases = i
		}
	}
	return cols
}

func rowToCompany(record []string, cols columns) *domain.Company {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := field(cols.name)
	if name == "" {
		return nil
	}

	var aliases []string
	for _, alias := range strings.Split(field(cols.aliases), ",") {
		if alias = strings.TrimSpace(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}

	return &domain.Company{
		Name:     name,
		Domain:   field(cols.domain),
		Website:  field(cols.website),
		Aliases:  aliases,
		IsActive: true,
	}
}
