package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/misenavi/shiftplanner/internal/config"
	"github.com/misenavi/shiftplanner/pkg/core/model"
)

type slotKey struct {
	day       model.Weekday
	block     model.Block
	startHour int
	endHour   int
}

// BuildHumanView condenses the raw schedule into one row per slot: the
// assigned staff rendered as "name(role,tag)" joined by " / ", plus a
// one-line detail count, or the understaffed label for slots nobody could
// fill. Rows are ordered Monday-first, lunch before dinner, then start
// hour, independent of the allocation priority order.
func BuildHumanView(rows []model.ScheduleRow, policy *config.Policy) []model.HumanViewRow {
	groups := make(map[slotKey][]model.ScheduleRow)
	keys := make([]slotKey, 0)

	for _, row := range rows {
		key := slotKey{row.Day, row.Block, row.StartHour, row.EndHour}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], row)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.day != b.day {
			return a.day < b.day
		}
		if a.block != b.block {
			return policy.BlockPriority(a.block) < policy.BlockPriority(b.block)
		}
		if a.startHour != b.startHour {
			return a.startHour < b.startHour
		}
		return a.endHour < b.endHour
	})

	view := make([]model.HumanViewRow, 0, len(keys))
	for _, key := range keys {
		view = append(view, renderSlot(key, groups[key], policy))
	}
	return view
}

func renderSlot(key slotKey, rows []model.ScheduleRow, policy *config.Policy) model.HumanViewRow {
	var staffs []string
	kitchenCount := 0
	newcomerCount := 0

	for _, row := range rows {
		if row.IsShortage() {
			continue
		}
		tag := policy.VeteranTag
		if row.Newcomer {
			tag = policy.NewcomerTag
		}
		staffs = append(staffs, fmt.Sprintf("%s(%s,%s)", row.Name, row.Role, tag))
		if roleIsKitchen(row.Role, policy.KitchenKeywords) {
			kitchenCount++
		}
		if row.Newcomer {
			newcomerCount++
		}
	}

	out := model.HumanViewRow{
		Day:   key.day,
		Block: key.block,
		Time:  fmt.Sprintf("%d-%d", key.startHour, key.endHour),
	}

	if len(staffs) == 0 {
		out.Detail = policy.UnderstaffedNote
		return out
	}

	out.StaffList = strings.Join(staffs, " / ")
	out.Detail = fmt.Sprintf("staff %d / kitchen %d / newcomers %d",
		len(staffs), kitchenCount, newcomerCount)
	return out
}

func roleIsKitchen(role string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(role, kw) {
			return true
		}
	}
	return false
}
