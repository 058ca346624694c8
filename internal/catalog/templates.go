package catalog

// The seeded catalog. IDs are stable: locked projects reference them
// forever, so never renumber an existing entry.
var templates = []Template{
	{
		ID:               101,
		Domain:           "Healthcare",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Clinic Appointment Scheduler",
		ProblemStatement: "Small clinics still take appointments over the phone and on paper, which leads to double bookings and long waiting times for patients.",
		ProposedSolution: "A web application where patients pick a doctor and an open slot, and the clinic staff see a single day-wise calendar of confirmed bookings.",
		KeyFeatures:      []string{"Doctor-wise slot calendar", "Patient booking form with confirmation", "Staff dashboard with day view", "Cancellation and rescheduling"},
		RoadmapText:      "Week 1: Requirements and slot data model. Week 2: Booking flow and validations. Week 3: Staff calendar dashboard. Week 4: Cancellation, rescheduling and polish.",
		TasksText:        "1. Design the slot and booking schema. 2. Build the booking form. 3. Build the staff calendar. 4. Add cancellation flow. 5. Test double-booking prevention.",
		SummaryText:      "A lightweight scheduler that replaces a clinic's paper appointment book with a conflict-free online calendar.",
		VivaQAText:       "Q: How do you prevent two patients booking the same slot? A: The slot is marked taken at confirmation time and the booking form re-validates availability on submit.",
	},
	{
		ID:               102,
		Domain:           "Healthcare",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Medicine Reminder Tracker",
		ProblemStatement: "Elderly patients frequently miss doses because prescription schedules are complex and caregivers have no visibility into adherence.",
		ProposedSolution: "A reminder application where caregivers enter a prescription schedule and patients tick off doses, producing a simple adherence report.",
		KeyFeatures:      []string{"Prescription schedule entry", "Daily dose checklist", "Missed-dose highlighting", "Weekly adherence report"},
		RoadmapText:      "Week 1: Schedule data model. Week 2: Daily checklist UI. Week 3: Adherence report. Week 4: Caregiver sharing.",
		TasksText:        "1. Model prescriptions and doses. 2. Build checklist view. 3. Compute adherence stats. 4. Build report page.",
		SummaryText:      "A dose checklist that turns prescription schedules into a shared adherence view for patients and caregivers.",
		VivaQAText:       "Q: How is a missed dose detected? A: A dose not ticked within its time window is marked missed by a daily rollover job.",
	},
	{
		ID:               103,
		Domain:           "Healthcare",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner", "intermediate"},
		Title:            "Blood Donor Directory",
		ProblemStatement: "Hospitals lose critical time during emergencies searching for compatible blood donors through informal phone chains.",
		ProposedSolution: "A searchable donor directory filtered by blood group and locality, with donor availability status and a request broadcast list.",
		KeyFeatures:      []string{"Donor registration with blood group", "Search by group and locality", "Availability toggle", "Emergency request list"},
	},
	{
		ID:               104,
		Domain:           "Healthcare",
		Type:             "Mini Project",
		SkillTags:        []string{"intermediate"},
		Title:            "Symptom Triage Assistant",
		ProblemStatement: "Outpatient departments spend consultation time on cases that basic triage could have routed to the right specialist directly.",
		ProposedSolution: "A rule-based questionnaire that maps reported symptoms to a department recommendation and urgency band before registration.",
		KeyFeatures:      []string{"Branching symptom questionnaire", "Department recommendation", "Urgency banding", "Printable triage slip"},
		RoadmapText:      "Week 1: Rule table design. Week 2: Questionnaire engine. Week 3: Recommendation mapping. Week 4: Triage slip and reporting.",
	},
	{
		ID:               105,
		Domain:           "Healthcare",
		Type:             "Final Project",
		SkillTags:        []string{"advanced"},
		Title:            "Hospital Bed Management System",
		ProblemStatement: "Bed occupancy in multi-ward hospitals is tracked on whiteboards, so admissions staff cannot see real availability across wards.",
		ProposedSolution: "A ward-wise bed inventory with admission, transfer and discharge workflows and an occupancy dashboard for admissions staff.",
		KeyFeatures:      []string{"Ward and bed inventory", "Admission and discharge workflow", "Inter-ward transfers", "Occupancy dashboard"},
		RoadmapText:      "Phase 1: Inventory model and CRUD. Phase 2: Admission/discharge workflow. Phase 3: Transfers and audit log. Phase 4: Dashboard and reports.",
		TasksText:        "1. Model wards and beds. 2. Admission workflow. 3. Discharge workflow. 4. Transfer workflow. 5. Occupancy dashboard. 6. Audit trail.",
		SummaryText:      "A live bed board replacing whiteboard occupancy tracking with auditable admission, transfer and discharge flows.",
		VivaQAText:       "Q: How do you handle a transfer racing a new admission for the same bed? A: Bed state changes are single-row conditional updates, so one of the two writers loses and is asked to pick again.",
	},
	{
		ID:               201,
		Domain:           "Finance",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Personal Expense Splitter",
		ProblemStatement: "Flatmates and trip groups settle shared expenses through ad-hoc notes, which causes disputes about who owes whom.",
		ProposedSolution: "An expense log per group that computes simplified pairwise balances and a minimal set of settlement payments.",
		KeyFeatures:      []string{"Group expense log", "Pairwise balance computation", "Settlement suggestion", "Expense categories"},
		RoadmapText:      "Week 1: Group and expense model. Week 2: Balance computation. Week 3: Settlement suggestions. Week 4: Categories and summaries.",
		SummaryText:      "A group ledger that reduces shared expenses to the fewest settlement payments.",
	},
	{
		ID:               202,
		Domain:           "Finance",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner", "intermediate"},
		Title:            "Budget Envelope Planner",
		ProblemStatement: "First-time earners overspend because monthly budgets are planned once and never checked against actual spending.",
		ProposedSolution: "An envelope-style planner where income is allocated to categories and each recorded expense draws down its envelope visibly.",
		KeyFeatures:      []string{"Category envelopes", "Expense recording", "Envelope burn-down view", "Month rollover"},
	},
	{
		ID:               203,
		Domain:           "Finance",
		Type:             "Final Project",
		SkillTags:        []string{"intermediate", "advanced"},
		Title:            "Micro-Investment Portfolio Tracker",
		ProblemStatement: "Retail investors spread small holdings across multiple platforms and have no consolidated view of allocation or returns.",
		ProposedSolution: "A portfolio tracker that imports holdings, computes allocation by asset class, and charts returns against a benchmark.",
		KeyFeatures:      []string{"Holding import", "Asset-class allocation", "Returns vs benchmark chart", "Rebalancing hints"},
		RoadmapText:      "Phase 1: Holdings model and import. Phase 2: Allocation analytics. Phase 3: Benchmark comparison. Phase 4: Rebalancing hints.",
		VivaQAText:       "Q: Where do prices come from? A: A pluggable quote source; the reference build uses end-of-day CSV imports.",
	},
	{
		ID:               301,
		Domain:           "E-Commerce",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Campus Marketplace",
		ProblemStatement: "Students resell books and gadgets through noticeboards and chat groups where listings expire unseen and buyers cannot search.",
		ProposedSolution: "A campus-scoped listing site with categories, search, and a simple reserve-and-meet flow instead of online payment.",
		KeyFeatures:      []string{"Item listings with photos", "Category and keyword search", "Reserve flow", "Seller ratings"},
		RoadmapText:      "Week 1: Listing model and CRUD. Week 2: Search and categories. Week 3: Reserve flow. Week 4: Ratings.",
		TasksText:        "1. Listing CRUD. 2. Search. 3. Reservation flow. 4. Rating system.",
	},
	{
		ID:               302,
		Domain:           "E-Commerce",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Local Bakery Order Book",
		ProblemStatement: "Home bakeries take custom cake orders over chat and routinely lose track of delivery dates and advance payments.",
		ProposedSolution: "An order book where customers submit custom orders with a required date, and the baker manages a day-wise production queue.",
		KeyFeatures:      []string{"Custom order form", "Day-wise production queue", "Advance payment tracking", "Order status updates"},
	},
	{
		ID:               303,
		Domain:           "E-Commerce",
		Type:             "Hackathon Project",
		SkillTags:        []string{"intermediate", "advanced"},
		Title:            "Flash Sale Inventory Guard",
		ProblemStatement: "Flash sales oversell inventory because stock checks and order placement happen in separate, racing steps.",
		ProposedSolution: "A checkout service that reserves stock atomically with a short TTL, releasing unclaimed reservations back to the pool.",
		KeyFeatures:      []string{"Atomic stock reservation", "Reservation TTL and release", "Oversell-proof checkout", "Live stock counter"},
		SummaryText:      "A reservation-based checkout that makes overselling structurally impossible during flash sales.",
	},
	{
		ID:               401,
		Domain:           "Banking",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner", "intermediate"},
		Title:            "Branch Queue Token System",
		ProblemStatement: "Bank branches issue paper tokens, so customers wait in the hall with no estimate and counters cannot balance load.",
		ProposedSolution: "A digital token system where customers take a token by service type and displays call tokens to the least-loaded counter.",
		KeyFeatures:      []string{"Service-type token issue", "Counter call screen", "Wait estimate", "Daily token report"},
	},
	{
		ID:               402,
		Domain:           "Banking",
		Type:             "Final Project",
		SkillTags:        []string{"advanced"},
		Title:            "Loan Application Workflow",
		ProblemStatement: "Loan applications pass through officers over email, losing documents and making status opaque to the applicant.",
		ProposedSolution: "A staged workflow engine for loan applications with document checklists, officer queues, and applicant-visible status.",
		KeyFeatures:      []string{"Staged approval workflow", "Document checklist", "Officer work queues", "Applicant status portal"},
		RoadmapText:      "Phase 1: Application model and stages. Phase 2: Officer queues. Phase 3: Document checklist. Phase 4: Applicant portal.",
		TasksText:        "1. Stage model. 2. Queue assignment. 3. Checklist validation. 4. Status portal. 5. Decision audit log.",
		SummaryText:      "A loan pipeline that replaces email hand-offs with staged queues and an applicant-facing status page.",
		VivaQAText:       "Q: How are stage transitions guarded? A: Each transition validates the stage's checklist before the application can move forward.",
	},
	{
		ID:               501,
		Domain:           "Business",
		Type:             "Mini Project",
		SkillTags:        []string{"beginner"},
		Title:            "Visitor Gate Pass Register",
		ProblemStatement: "Office reception desks log visitors in paper registers that cannot be searched during audits or emergencies.",
		ProposedSolution: "A digital visitor register with host notification, badge printing, and a live in-building visitor list.",
		KeyFeatures:      []string{"Visitor check-in form", "Host notification", "Printable badge", "Live in-building list"},
	},
	{
		ID:               502,
		Domain:           "Business",
		Type:             "Hackathon Project",
		SkillTags:        []string{"beginner", "intermediate"},
		Title:            "Meeting Room Radar",
		ProblemStatement: "Teams roam floors looking for free meeting rooms because calendar bookings and actual occupancy constantly disagree.",
		ProposedSolution: "A floor-map view of room status combining calendar bookings with lightweight check-in, auto-releasing no-show bookings.",
		KeyFeatures:      []string{"Floor map room view", "Booking with check-in", "No-show auto-release", "Usage stats"},
	},
}
