package catalog

import "fmt"

const imageBase = "https://api.volcanoteide.com/img/cache/"

// keys expands to services.<slug>.<section>.0 .. n-1
func keys(slug, section string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("services.%s.%s.%d", slug, section, i)
	}
	return out
}

func images(files ...string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = imageBase + f
	}
	return out
}

func entry(slug string) Service {
	return Service{
		Slug:                slug,
		TitleKey:            "services." + slug + ".title",
		ShortDescriptionKey: "services." + slug + ".shortDescription",
		DescriptionKey:      "services." + slug + ".description",
		FullDescriptionKey:  "services." + slug + ".fullDescription",
	}
}

// content list sizes: highlights, includes, notIncluded, restrictions, importantInfo, prepare
func withContent(s Service, sizes [6]int) Service {
	s.HighlightsKeys = keys(s.Slug, "highlights", sizes[0])
	s.IncludesKeys = keys(s.Slug, "includes", sizes[1])
	s.NotIncludedKeys = keys(s.Slug, "notIncluded", sizes[2])
	s.RestrictionsKeys = keys(s.Slug, "restrictions", sizes[3])
	s.ImportantInfoKeys = keys(s.Slug, "importantInfo", sizes[4])
	s.PrepareKeys = keys(s.Slug, "prepare", sizes[5])
	return s
}

const (
	cableCarBaseStation = "Teide Cable Car base station, TF-21 motorway, km 43 - Teide National Park, 38300 La Orotava"
	sunsetPickup        = "Pick-up from hotels in North and South Tenerife. Pick-up time varies between 2:15pm and 4:30pm depending on sunset time."
)

var services = []Service{
	func() Service {
		s := withContent(entry("teide-cable-car"), [6]int{5, 5, 3, 2, 1, 2})
		s.Price = 23.5
		s.Duration = "1 hour"
		s.Difficulty = DifficultyLow
		s.Rating = 4.46
		s.ReviewCount = 3881
		s.Languages = []string{"DE", "EN", "ES", "FR", "IT", "NL", "PL", "RU"}
		s.Images = images(
			"5906x3919_302058763899_1-mount-teide-cable-car-tickets-2025.jpg",
			"1500x1000_751492995_2-mount-teide-cable-car-tickets-2025.jpg",
			"1500x1003_751492997_4-mount-teide-cable-car-tickets-2025.jpg",
		)
		s.Category = CategoryCableCar
		s.MeetingPoint = cableCarBaseStation
		s.RelatedSlugs = []string{"teide-tour-with-cable-car", "sunset-cable-car", "hiking-teide-with-cable-car"}
		return s
	}(),
	func() Service {
		s := withContent(entry("teide-tour-with-cable-car"), [6]int{3, 4, 4, 7, 3, 2})
		s.Price = 87
		s.Duration = "7 hours"
		s.Difficulty = DifficultyLow
		s.Rating = 4.42
		s.ReviewCount = 317
		s.Languages = []string{"DE", "EN", "ES", "FR", "IT", "NL"}
		s.Images = images(
			"2657x1771_13926431762_0-mount-teide-tour-with-cable-car-tickets-transport1.jpg",
			"2657x1771_13926431762_1-guide-mount-teide-tour-with-cable-car-tickets-excursion.jpg",
			"2657x1771_13926431762_2-teide-tour-with-cable-car-tickets-cabin.jpg",
		)
		s.Category = CategoryCableCar
		s.MeetingPoint = "Pick-up from hotels in North and South Tenerife, and the metropolitan area of Santa Cruz de Tenerife and Candelaria"
		s.RelatedSlugs = []string{"teide-cable-car", "teide-tour-without-cable-car", "sunset-cable-car"}
		return s
	}(),
	func() Service {
		s := withContent(entry("teide-tour-without-cable-car"), [6]int{4, 4, 3, 2, 2, 2})
		s.Price = 49
		s.Duration = "7 hours"
		s.Difficulty = DifficultyLow
		s.Rating = 4.72
		s.ReviewCount = 54
		s.Languages = []string{"DE", "EN", "ES", "FR", "IT", "NL"}
		s.Images = images(
			"2657x1401_13726431393_0-teide-tour-without-cable-car-bus.jpg",
			"2657x1771_13926431762_1-teide-tour-without-cable-car.jpg",
			"2657x1771_13926431762_2-teide-tour-roques-garcia-en.jpg",
		)
		s.Category = CategoryCableCar
		s.MeetingPoint = "Pick-up from hotels in North and South Tenerife, Playa Paraiso, Los Gigantes, and the metropolitan area of Santa Cruz de Tenerife and Candelaria"
		s.RelatedSlugs = []string{"teide-tour-with-cable-car", "teide-cable-car", "teide-legend"}
		return s
	}(),
	func() Service {
		s := withContent(entry("sunset-cable-car"), [6]int{4, 2, 4, 7, 3, 3})
		s.Price = 71
		s.Duration = "2 hours"
		s.Difficulty = DifficultyMedium
		s.Rating = 4.17
		s.ReviewCount = 42
		s.Languages = []string{"ES"}
		s.Images = images(
			"1500x1000_751492995_1-sunset-on-mount-teide-with-cable-car-2025.jpg",
			"1500x1000_751492995_2-sunset-on-mount-teide-with-cable-car-2025.jpg",
			"1500x1000_751492995_3-sunset-on-mount-teide-with-cable-car-2025.jpg",
		)
		s.Category = CategoryCableCar
		s.MeetingPoint = cableCarBaseStation
		s.RelatedSlugs = []string{"sunset-and-stars", "teide-cable-car", "astronomical-observation"}
		return s
	}(),
	func() Service {
		s := withContent(entry("sunset-and-stars"), [6]int{4, 5, 4, 8, 4, 3})
		s.Price = 172
		s.Duration = "8 hours"
		s.Difficulty = DifficultyMedium
		s.Rating = 4.47
		s.ReviewCount = 45
		s.Languages = []string{"EN", "ES"}
		s.Images = images(
			"1500x1000_751492995_1-sunset-and-stars-mount-teide-by-night-2025.jpg",
			"1500x1000_751492995_2-sunset-and-stars-mount-teide-by-night-2025.jpg",
			"1500x1000_751492995_3-night-tour-to-mount-teide-stargazing-2025.jpg",
		)
		s.Category = CategoryStars
		s.MeetingPoint = sunsetPickup
		s.RelatedSlugs = []string{"astronomical-observation", "sunset-cable-car", "astronomic-tour"}
		return s
	}(),
	func() Service {
		s := withContent(entry("astronomical-observation"), [6]int{4, 3, 2, 1, 3, 4})
		s.Price = 40
		s.Duration = "1 hour"
		s.Difficulty = DifficultyLow
		s.Rating = 4.51
		s.ReviewCount = 70
		s.Languages = []string{"EN", "ES", "FR"}
		s.Images = images(
			"1300x984_651293979_1-astronomical-observation-teide-2025.jpg",
			"1300x984_651293979_2-astronomical-observation-teide-2025.jpg",
			"1500x1000_751492995_3-stargazing-teide-2025.jpg",
		)
		s.Category = CategoryStars
		s.MeetingPoint = "Teide Cable Car base station car park, TF-21 motorway km 43. Coordinates: 28.254448, -16.625747. Wait for a member of the Teide Explorer team at the closed access gate."
		s.RelatedSlugs = []string{"sunset-and-stars", "astronomic-tour", "mount-teide-night-tour"}
		return s
	}(),
	func() Service {
		s := withContent(entry("hiking-teide-with-cable-car"), [6]int{6, 5, 3, 9, 5, 4})
		s.Price = 163
		s.Duration = "6 hours"
		s.Difficulty = DifficultyHigh
		s.Rating = 4.6
		s.ReviewCount = 244
		s.Languages = []string{"EN", "ES"}
		s.Images = images(
			"1500x1000_751492995_1-ascent-to-the-peak-of-teide-with-a-cable-car-ride-2025.jpg",
			"1500x1000_751492995_2-ascent-to-the-peak-of-teide-with-a-cable-car-ride-2025.jpg",
			"1500x1000_751492995_3-ascent-to-the-peak-of-teide-with-a-cable-car-ride-2025.jpg",
		)
		s.Category = CategoryHiking
		s.MeetingPoint = "Pick-up from hotels in North and South Tenerife. Transport service available from 7:00am to 9:30am."
		s.RelatedSlugs = []string{"teide-cable-car", "teide-tour-with-cable-car", "sunset-and-stars"}
		return s
	}(),
	func() Service {
		s := withContent(entry("teide-observatory-visit"), [6]int{4, 2, 2, 6, 3, 4})
		s.Price = 21
		s.Duration = "1 hour 30 minutes"
		s.Difficulty = DifficultyLow
		s.Rating = 4.65
		s.ReviewCount = 327
		s.Languages = []string{"DE", "EN", "ES", "FR"}
		s.Images = images(
			"1300x867_641293862_1-1-visit-teide-observatory-2025.jpg",
			"1300x867_641293862_2-2-visit-teide-observatory-2025.jpg",
			"1300x867_641293862_3-3-visit-teide-observatory-2025.jpg",
		)
		s.Category = CategoryObservatory
		s.MeetingPoint = "Izana Observatory, altitude ~2,400m. You must arrive at the Observatory gate at least 30 minutes before the scheduled time of the visit."
		s.RelatedSlugs = []string{"astronomic-tour", "astronomical-observation", "sunset-and-stars"}
		return s
	}(),
	func() Service {
		s := withContent(entry("astronomic-tour"), [6]int{3, 5, 3, 6, 3, 5})
		s.Price = 103
		s.Duration = "8 hours"
		s.Difficulty = DifficultyLow
		s.Rating = 4.59
		s.ReviewCount = 195
		s.Languages = []string{"EN", "ES"}
		s.Images = images(
			"1500x1000_751492995_1-excursion-stargazing-tenerife-2025.jpg",
			"1500x1000_751492995_2-excursion-teide-stargazing-2025.jpg",
			"1500x1000_751492995_3-excursion-teide-stargazing-2025.jpg",
		)
		s.Category = CategoryStars
		s.MeetingPoint = "Pick-up from hotels. Pick-up time varies between 2:15pm and 4:30pm depending on sunset time."
		s.RelatedSlugs = []string{"teide-observatory-visit", "astronomical-observation", "sunset-and-stars"}
		return s
	}(),
	func() Service {
		s := withContent(entry("teide-legend"), [6]int{3, 3, 3, 1, 3, 2})
		s.Price = 3
		s.Duration = "20 minutes"
		s.Difficulty = DifficultyLow
		s.Rating = 2.55
		s.ReviewCount = 11
		s.Languages = []string{"DE", "EN", "ES", "FR", "IT", "NL", "PL", "RU"}
		s.Images = images(
			"850x510_43845507_teide-legend-tassat-guayota-en.jpg",
			"1000x600_53995597_teide-legend-tassat-guayota-1-EN.jpg",
			"850x507_43845504_teide-legend-characters.jpg",
		)
		s.Category = CategoryIndependently
		s.MeetingPoint = "Teide Cable Car Visitors' Centre, TF-21 motorway, km 43 - Teide National Park. Open daily (except Christmas Day), 9:00am to 3:00pm (3:30pm during Holy Week)."
		s.RelatedSlugs = []string{"teide-cable-car", "teide-tour-without-cable-car", "mount-teide-night-tour"}
		return s
	}(),
	func() Service {
		s := withContent(entry("mount-teide-night-tour"), [6]int{5, 5, 3, 2, 3, 2})
		s.Price = 73
		s.Duration = "6 hours 30 minutes"
		s.Difficulty = DifficultyLow
		s.Rating = 4.46
		s.ReviewCount = 57
		s.Languages = []string{"EN", "ES"}
		s.Images = images(
			"1300x867_641293862_1-sunset-mount-teide-night-tour-2025.jpg",
			"1300x867_641293862_3-group-astronomical-observation-mount-teide-night-tour-2025.jpg",
			"1300x867_641293862_4-astronomical-observation-mount-teide-night-tour.-2025.jpg",
		)
		s.Category = CategoryStars
		s.MeetingPoint = "Pick-up from a meeting point near your hotel in North or South Tenerife. Schedule varies throughout the year depending on sunset time."
		s.RelatedSlugs = []string{"astronomical-observation", "sunset-and-stars", "astronomic-tour"}
		return s
	}(),
}
