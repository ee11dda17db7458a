package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/tatianab/forest-quest/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#874BFD"))
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the game content: areas, guardians, items and skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCatalog(c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderCatalog(c *models.Catalog) string {
	guardians := newTable("Area", "Guardian", "Service", "HP", "Attacks")
	for _, area := range c.AllAreas() {
		g, ok := c.GuardianByArea(area)
		if !ok {
			guardians.Row(area, "-", "-", "-", "-")
			continue
		}
		guardians.Row(area, g.Name, g.Service, strconv.Itoa(g.HP), strings.Join(g.AttackPatterns, ", "))
	}

	items := newTable("Item", "Effects", "Description")
	for _, it := range c.Items {
		effects := make([]string, 0, len(it.Effects))
		for _, e := range it.Effects {
			effects = append(effects, fmt.Sprintf("%s %+g", e.Stat, e.Value))
		}
		items.Row(it.Name, strings.Join(effects, ", "), it.Description)
	}

	skills := newTable("Skill", "Level", "Power", "Description")
	for _, s := range c.Skills {
		skills.Row(s.Name, strconv.Itoa(s.LevelRequired), strconv.Itoa(s.Power), s.Description)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(c.Title),
		guardians.Render(),
		items.Render(),
		skills.Render(),
	)
}
