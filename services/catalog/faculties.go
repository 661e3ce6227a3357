package catalog

// Faculty describes one academic-calendar section to collect. Sitemap
// faculties publish a per-department index that must be walked first;
// the rest list their course blocks directly on the given pages.
type Faculty struct {
	Name    string   `json:"name"`
	URLs    []string `json:"urls"`
	Sitemap bool     `json:"sitemap"`
}

const calendarBaseURL = "https://www.queensu.ca"

var DefaultFaculties = []Faculty{
	{
		Name:    "Arts & Science",
		URLs:    []string{"https://www.queensu.ca/academic-calendar/arts-science/course-descriptions/"},
		Sitemap: true,
	},
	{
		Name: "Education",
		URLs: []string{"https://www.queensu.ca/academic-calendar/education/course-descriptions/"},
	},
	{
		Name: "Health Sciences",
		URLs: []string{"https://www.queensu.ca/academic-calendar/health-sciences/bhsc/courses-instruction/"},
	},
	{
		Name: "Nursing",
		URLs: []string{"https://www.queensu.ca/academic-calendar/nursing/bachelor-nursing-science-course-descriptions/"},
	},
	{
		Name: "Engineering",
		URLs: []string{
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/apsc/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/chee/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/civl/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/cmpe/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/elec/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/ench/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/enph/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/geoe/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/mthe/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/mech/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/mren/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/mine/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/mntc/",
			"https://www.queensu.ca/academic-calendar/engineering-applied-sciences/courses-instruction/soft/",
		},
	},
	{
		Name: "Commerce",
		URLs: []string{"https://www.queensu.ca/academic-calendar/business/bachelor-commerce/courses-of-instruction/by20number/#onezerozeroleveltext"},
	},
}
