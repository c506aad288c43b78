package engine

// CalculateFairQuotas distributes the month's total required shift slots
// evenly across the roster for informational display. The floor share goes
// to everyone and the remainder is handed out one each to the first staff
// members in input order. Per-type quotas use ceiling division.
//
// Quotas are advisory only; the assembler does not enforce them.
func CalculateFairQuotas(staff []Staff, days []Day, cfg *HospitalConfig) []StaffQuota {
	if len(staff) == 0 {
		return []StaffQuota{}
	}

	totalSlots := 0
	slotsByType := make(map[string]int)
	for _, day := range days {
		totalSlots += len(day.Required)
		for _, st := range day.Required {
			slotsByType[st.ID]++
		}
	}

	base := totalSlots / len(staff)
	remainder := totalSlots % len(staff)

	quotas := make([]StaffQuota, 0, len(staff))
	for i, s := range staff {
		total := base
		if i < remainder {
			total++
		}

		byType := make(map[string]int, len(slotsByType))
		for typeID, count := range slotsByType {
			byType[typeID] = (count + len(staff) - 1) / len(staff)
		}

		quotas = append(quotas, StaffQuota{
			StaffID: s.ID,
			Name:    s.Name,
			Quota:   Quota{Total: total, ByType: byType},
		})
	}

	return quotas
}
