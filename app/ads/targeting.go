package ads

// NormalizeTargeting builds the canonical targeting groups from a raw
// targeting payload. Missing or malformed groups come back as empty slices,
// never as an error, and input order is preserved.
func NormalizeTargeting(raw map[string]any) Targeting {
	t := Targeting{
		Locations: make([]TargetingLocation, 0),
		Age:       make([]TargetingAge, 0),
		Gender:    make([]TargetingGender, 0),
	}

	for _, el := range sliceField(raw, "locations") {
		loc, ok := el.(map[string]any)
		if !ok {
			continue
		}

		// Deployments vary between "code" and "region" for the entry key.
		region, ok := loc["code"]
		if !ok {
			region = loc["region"]
		}

		t.Locations = append(t.Locations, TargetingLocation{
			Region:      EnsureString(region),
			Impressions: EnsureString(loc["impressions"]),
		})
	}

	for _, el := range sliceField(raw, "age") {
		age, ok := el.(map[string]any)
		if !ok {
			continue
		}

		t.Age = append(t.Age, TargetingAge{
			Region:    EnsureString(age["region"]),
			Age13To17: truthy(age["13-17"]),
			Age18To24: truthy(age["18-24"]),
			Age25To34: truthy(age["25-34"]),
			Age35To44: truthy(age["35-44"]),
			Age45To54: truthy(age["45-54"]),
			Age55Plus: truthy(age["55+"]),
		})
	}

	for _, el := range sliceField(raw, "gender") {
		gender, ok := el.(map[string]any)
		if !ok {
			continue
		}

		t.Gender = append(t.Gender, TargetingGender{
			Region:  EnsureString(gender["region"]),
			Female:  truthy(gender["female"]),
			Male:    truthy(gender["male"]),
			Unknown: truthy(gender["unknown"]),
		})
	}

	return t
}

func sliceField(raw map[string]any, key string) []any {
	s, _ := raw[key].([]any)
	return s
}
