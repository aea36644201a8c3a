package kb

import "bumpwise/apimodels"

// Curated entries, authored from evidence-based sources. Keys are the
// canonical lowercase lookup terms; colloquial terms live in aliases.go.
var records = map[string]apimodels.Outcome{
	"sushi": {
		Item:        "Sushi / Raw Fish",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "The main concern is foodborne illness, not inherent harm to the baby. High-quality sushi from reputable restaurants is lower risk.",
		DirectRisks: []string{
			"High-mercury fish (tuna, swordfish, shark) can affect fetal brain development - limit to 6oz/week",
			"Raw fish doesn't cross the placenta, but severe food poisoning could cause complications",
		},
		GeneralRisks: []string{
			"Listeria, salmonella, or parasites from improperly handled raw fish",
			"These risks exist for everyone, not just pregnant women",
		},
		Recommendations: []string{
			"Choose low-mercury fish: salmon, shrimp, crab, scallops",
			"Eat at reputable restaurants with high turnover (fresher fish)",
			"Avoid high-mercury fish: bigeye tuna, swordfish, shark, king mackerel",
			"Consider cooked rolls (California roll, shrimp tempura) if nervous",
			"Flash-frozen fish (required for sushi in US) kills parasites",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "If you have morning sickness, raw fish may be harder to tolerate",
			T2: "Generally the lowest-risk trimester if you want to indulge",
			T3: "Continue avoiding high-mercury fish; immune system slightly weaker",
		},
		Sources: []string{"FDA fish advisory", "Expecting Better by Emily Oster", "ACOG guidelines"},
	},

	"caffeine": {
		Item:        "Caffeine / Coffee",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Moderate caffeine (under 200mg/day) is considered safe. That's about one 12oz cup of coffee.",
		DirectRisks: []string{
			"Very high intake (>300mg/day) may slightly increase miscarriage risk in first trimester",
			"Caffeine crosses the placenta, but moderate amounts don't harm development",
		},
		GeneralRisks: []string{
			"Can worsen heartburn and insomnia",
			"May increase anxiety",
		},
		Recommendations: []string{
			"Limit to 200mg/day (one 12oz coffee or two cups of tea)",
			"Remember caffeine is also in tea, chocolate, and some sodas",
			"Decaf is fine - it still has small amounts (2-15mg)",
			"If you're sensitive, cut back gradually to avoid headaches",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Some studies suggest being more cautious in first trimester - consider limiting to one cup",
			T2: "Standard 200mg limit is well-supported",
			T3: "May want to cut back if having trouble sleeping",
		},
		Sources: []string{"ACOG", "American College of Obstetricians and Gynecologists", "Expecting Better"},
	},

	"deli meat": {
		Item:        "Deli Meat / Cold Cuts",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "The concern is listeria bacteria, which can cause serious complications. Heating until steaming eliminates this risk.",
		DirectRisks: []string{
			"Listeria can cross the placenta and cause miscarriage, stillbirth, or severe illness in newborn",
			"Pregnant women are 10x more likely to get listeriosis than general population",
		},
		GeneralRisks: []string{
			"Listeria risk exists for everyone, especially those with weakened immune systems",
		},
		Recommendations: []string{
			"Heat deli meat until steaming (165°F) to kill listeria",
			"Hot sandwiches where meat is heated are fine",
			"Freshly cooked meat that you slice yourself is safe",
			"Pre-packaged deli meat is slightly safer than deli counter (less handling)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Listeria risk is highest concern in first trimester due to miscarriage risk",
			T2: "Continue heating deli meat",
			T3: "Listeria can cause preterm labor, continue precautions",
		},
		Sources: []string{"CDC", "FDA", "ACOG"},
	},

	"alcohol": {
		Item:        "Alcohol",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "No amount of alcohol has been proven safe during pregnancy. Alcohol crosses the placenta freely.",
		DirectRisks: []string{
			"Fetal Alcohol Spectrum Disorders (FASDs) - can cause lifelong physical and behavioral problems",
			"Increased risk of miscarriage and stillbirth",
			"Alcohol directly affects fetal brain development",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Avoid alcohol entirely during pregnancy",
			"If you drank before knowing you were pregnant, don't panic - stop now",
			"Non-alcoholic beer/wine is fine (trace amounts are negligible)",
			"If you're struggling to stop, talk to your doctor confidentially",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Highest risk period - major organ development occurring",
			T2: "Brain development continues - no safe amount",
			T3: "Brain still developing rapidly - continue avoiding",
		},
		Sources: []string{"CDC", "ACOG", "AAP (American Academy of Pediatrics)"},
	},

	"soft cheese": {
		Item:        "Soft Cheese",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "The concern is listeria in unpasteurized cheese. Most US cheese is pasteurized and safe.",
		DirectRisks: []string{
			"Listeria from unpasteurized cheese can cause miscarriage or stillbirth",
		},
		GeneralRisks: []string{
			"Listeria risk applies to everyone",
		},
		Recommendations: []string{
			"Check that cheese is made from pasteurized milk (most US cheese is)",
			"Pasteurized brie, camembert, feta, goat cheese are all safe",
			"Be cautious with imported artisanal cheeses",
			"When in doubt, heat cheese until bubbly (kills listeria)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions apply throughout pregnancy."},
		Sources:        []string{"FDA", "ACOG"},
	},

	"hot springs": {
		Item:        "Hot Springs / Hot Tubs",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "The concern is raising core body temperature above 101°F, especially in first trimester.",
		DirectRisks: []string{
			"Hyperthermia (overheating) in first trimester linked to neural tube defects",
			"Core temperature above 101°F for extended periods is the concern",
		},
		GeneralRisks: []string{
			"Dehydration",
			"Dizziness or fainting from heat",
		},
		Recommendations: []string{
			"Limit time to 10 minutes or less",
			"Keep water temperature under 100°F if possible",
			"Get out immediately if you feel too warm, dizzy, or uncomfortable",
			"Warm baths (not hot) are perfectly safe",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Most critical time to avoid overheating - neural tube forming",
			T2: "Lower risk but still avoid prolonged exposure",
			T3: "Overheating can cause dizziness; may be uncomfortable anyway",
		},
		Sources: []string{"ACOG", "Expecting Better", "March of Dimes"},
	},

	"exercise": {
		Item:        "Exercise",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Exercise is highly recommended during pregnancy! It reduces complications and improves outcomes.",
		DirectRisks: []string{
			"Contact sports or activities with fall risk should be avoided",
			"Don't start intense new regimens - maintain pre-pregnancy fitness level",
		},
		GeneralRisks: []string{
			"Dehydration",
			"Overheating",
		},
		Recommendations: []string{
			"150 minutes of moderate exercise per week is recommended",
			"Safe activities: walking, swimming, prenatal yoga, stationary cycling",
			"Avoid: contact sports, hot yoga, scuba diving, activities with fall risk",
			"You should be able to talk while exercising (not too intense)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Continue normal exercise routine; modify if experiencing fatigue/nausea",
			T2: "Often the best time for exercise - energy returns",
			T3: "May need to reduce intensity; avoid lying flat on back for long periods",
		},
		Sources: []string{"ACOG", "American College of Sports Medicine"},
	},

	"flying": {
		Item:        "Flying / Air Travel",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Flying is safe for most pregnant women through 36 weeks. Some airlines restrict travel after 36 weeks.",
		DirectRisks: []string{
			"Slightly increased blood clot risk on long flights (pregnancy already increases clot risk)",
		},
		GeneralRisks: []string{
			"Dehydration from cabin air",
			"Swelling from sitting",
		},
		Recommendations: []string{
			"Walk around every 1-2 hours on long flights",
			"Stay hydrated - drink plenty of water",
			"Wear compression socks for long flights",
			"Check airline policies - most restrict after 36 weeks",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Safe, but consider morning sickness and fatigue",
			T2: "Best time to travel - lowest risk period",
			T3: "Airlines may require doctor's note after 28-36 weeks; avoid after 36 weeks",
		},
		Sources: []string{"ACOG", "Royal College of Obstetricians"},
	},

	"retinol": {
		Item:        "Retinol / Retinoids / Vitamin A derivatives",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Oral retinoids (Accutane) are proven to cause birth defects. Topical retinoids are avoided as a precaution.",
		DirectRisks: []string{
			"Oral retinoids (isotretinoin/Accutane) cause severe birth defects",
			"Topical retinoids: no proven harm, but avoided out of caution",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Stop oral retinoids before trying to conceive",
			"Switch topical retinol to pregnancy-safe alternatives",
			"Safe alternatives: vitamin C, azelaic acid, niacinamide, hyaluronic acid",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Most critical time - avoid all retinoids",
			T2: "Continue avoiding",
			T3: "Continue avoiding",
		},
		Sources: []string{"FDA", "AAD (American Academy of Dermatology)", "ACOG"},
	},

	"tylenol": {
		Item:        "Tylenol / Acetaminophen",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Acetaminophen is the recommended pain reliever during pregnancy. Use the lowest effective dose.",
		DirectRisks: []string{
			"Some recent studies suggest possible links to ADHD with heavy use, but evidence is weak",
		},
		GeneralRisks: []string{
			"Liver damage with overdose (applies to everyone)",
		},
		Recommendations: []string{
			"Use lowest effective dose for shortest time needed",
			"Follow package directions (max 3000mg/day)",
			"Preferred over NSAIDs (ibuprofen, naproxen)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Considered safe throughout pregnancy when used as directed."},
		Sources:        []string{"ACOG", "FDA"},
	},

	"ibuprofen": {
		Item:        "Ibuprofen / Advil / NSAIDs",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "NSAIDs should be avoided, especially in third trimester when they can affect fetal heart development.",
		DirectRisks: []string{
			"First trimester: possible slightly increased miscarriage risk",
			"Third trimester: can cause premature closure of ductus arteriosus (heart vessel)",
			"Can reduce amniotic fluid",
		},
		GeneralRisks: []string{
			"GI upset, kidney effects (applies to everyone)",
		},
		Recommendations: []string{
			"Use acetaminophen (Tylenol) instead",
			"If you took ibuprofen before knowing you were pregnant, don't panic",
			"For severe pain, talk to your doctor about alternatives",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Best to avoid, but occasional use likely low risk",
			T2: "Avoid if possible",
			T3: "Definitely avoid - can cause fetal heart problems",
		},
		Sources: []string{"FDA", "ACOG"},
	},

	"kombucha": {
		Item:        "Kombucha",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Unpasteurized kombucha has small amounts of alcohol and bacteria. Commercial pasteurized versions are safer.",
		DirectRisks: []string{
			"Unpasteurized versions contain live bacteria and trace alcohol (0.5-3%)",
			"Homemade kombucha has higher contamination risk",
		},
		GeneralRisks: []string{
			"Caffeine content (from tea base)",
			"Digestive upset from probiotics",
		},
		Recommendations: []string{
			"Choose pasteurized commercial brands",
			"Check alcohol content - should be under 0.5%",
			"Avoid homemade or unpasteurized varieties",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Best to avoid unpasteurized - stick to pasteurized if you want it",
			T2: "Occasional pasteurized kombucha is low risk",
			T3: "Same precautions apply",
		},
		Sources: []string{"FDA", "MotherToBaby"},
	},

	"eggs": {
		Item:        "Eggs",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Fully cooked eggs are safe and nutritious. The concern is salmonella from raw or runny eggs.",
		DirectRisks: []string{
			"Salmonella doesn't typically cross placenta, but severe illness could cause complications",
		},
		GeneralRisks: []string{
			"Salmonella food poisoning risk from undercooked eggs",
		},
		Recommendations: []string{
			"Cook eggs until both white and yolk are firm",
			"Avoid raw eggs in homemade mayo, Caesar dressing, cookie dough, eggnog",
			"Pasteurized eggs are safe even raw (look for pasteurized label)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"FDA", "CDC", "ACOG"},
	},

	"peanuts": {
		Item:        "Peanuts / Tree Nuts",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Eating peanuts during pregnancy does NOT increase baby's allergy risk. May actually be protective!",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Only avoid if YOU have a nut allergy",
		},
		Recommendations: []string{
			"Safe and nutritious source of protein and healthy fats",
			"Old advice to avoid nuts has been reversed",
			"Studies suggest eating nuts may reduce baby's allergy risk",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"ACOG", "AAP", "LEAP Study"},
	},

	"shellfish": {
		Item:        "Shellfish / Shrimp / Crab / Lobster",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Cooked shellfish is safe and nutritious! Shellfish are low in mercury and high in protein.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Raw shellfish carries bacteria/virus risk (applies to everyone)",
		},
		Recommendations: []string{
			"Cook shellfish thoroughly (shells should open; flesh opaque)",
			"Shrimp, crab, lobster, scallops are all low-mercury choices",
			"Avoid raw oysters, raw clams",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy when cooked."},
		Sources:        []string{"FDA", "ACOG", "EPA"},
	},

	"herbal tea": {
		Item:        "Herbal Tea",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Some herbal teas are safe, others should be avoided. Caffeine-free doesn't mean risk-free.",
		DirectRisks: []string{
			"Some herbs can stimulate uterus or affect hormones",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Generally safe: ginger, peppermint, lemon balm, rooibos",
			"Avoid: licorice root, dong quai, blue/black cohosh, pennyroyal",
			"Limit raspberry leaf tea to third trimester (may stimulate uterus)",
			"Avoid \"detox\" or \"weight loss\" teas",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Stick to safe teas - ginger tea can help with nausea",
			T2: "Continue with safe herbal teas",
			T3: "Raspberry leaf tea is traditionally used to prepare for labor",
		},
		Sources: []string{"ACOG", "American Pregnancy Association"},
	},

	"green tea": {
		Item:        "Green Tea",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Green tea contains caffeine and may affect folic acid absorption. Limit to 1-2 cups daily.",
		DirectRisks: []string{
			"May interfere with folic acid absorption (important for neural tube development)",
			"Contains caffeine (25-50mg per cup)",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Limit to 1-2 cups daily",
			"Count toward 200mg caffeine limit",
			"Don't drink with prenatal vitamins (interferes with iron/folic acid)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Be especially mindful of folic acid absorption in first trimester",
			T2: "Moderate consumption okay",
			T3: "Same precautions",
		},
		Sources: []string{"NIH", "ACOG"},
	},

	"energy drinks": {
		Item:        "Energy Drinks",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Energy drinks have very high caffeine plus other stimulants. Best to avoid during pregnancy.",
		DirectRisks: []string{
			"High caffeine content (80-300mg per can) exceeds safe limits",
			"Additional stimulants (guarana, taurine) not studied in pregnancy",
		},
		GeneralRisks: []string{
			"Can cause rapid heartbeat, high blood pressure",
			"High sugar content",
		},
		Recommendations: []string{
			"Avoid energy drinks during pregnancy",
			"If you need a boost, try coffee or tea (easier to track caffeine)",
			"Address fatigue with rest, hydration, and balanced meals",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Avoid throughout pregnancy."},
		Sources:        []string{"ACOG", "American Beverage Association"},
	},

	"apple": {
		Item:         "Apple",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Apples are safe and nutritious during pregnancy! They provide fiber, vitamins, and antioxidants.",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Wash thoroughly before eating to remove pesticides",
			"Great source of fiber which helps with pregnancy constipation",
			"Contains vitamin C and potassium",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy - a great healthy snack!"},
		Sources:        []string{"ACOG", "American Pregnancy Association"},
	},

	"pineapple": {
		Item:        "Pineapple",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Pineapple is safe during pregnancy! The myth that it causes miscarriage is not supported by evidence.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Acidic - may worsen heartburn",
		},
		Recommendations: []string{
			"Safe to eat in normal food amounts",
			"Bromelain enzyme is only a concern in supplement form, not fresh fruit",
			"You would need to eat 7-10 whole pineapples to get concerning amounts",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy in normal amounts."},
		Sources:        []string{"ACOG", "Expecting Better"},
	},

	"papaya": {
		Item:        "Papaya",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Ripe papaya is safe. Unripe (green) papaya contains latex that may cause contractions.",
		DirectRisks: []string{
			"Unripe papaya latex may stimulate uterine contractions",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Ripe papaya (yellow/orange) is safe and nutritious",
			"Avoid unripe/green papaya and papaya seeds",
			"Avoid papaya enzyme supplements",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Stick to fully ripe papaya",
			T2: "Ripe papaya is safe",
			T3: "Continue avoiding unripe papaya",
		},
		Sources: []string{"British Journal of Nutrition", "MotherToBaby"},
	},

	"honey": {
		Item:        "Honey",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Honey is safe during pregnancy! The botulism concern is only for infants under 1 year.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"High in sugar/calories",
		},
		Recommendations: []string{
			"Safe to eat during pregnancy",
			"Botulism spores cannot harm adults or fetuses - only infants",
			"Don't give honey to your baby after birth (wait until 1 year)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"CDC", "ACOG"},
	},

	"blue pea flower": {
		Item:        "Blue Pea Flower / Butterfly Pea Flower",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Limited research on butterfly pea flower during pregnancy. Best to avoid or use sparingly.",
		DirectRisks: []string{
			"May have uterine stimulant properties - not well studied",
			"Some traditional medicine sources advise avoiding during pregnancy",
		},
		GeneralRisks: []string{
			"Limited scientific research available",
		},
		Recommendations: []string{
			"Avoid during first trimester to be safe",
			"If consuming, limit to occasional small amounts",
			"Skip butterfly pea tea/drinks during pregnancy",
			"Consult your healthcare provider if you want to use it",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Best to avoid - uterine stimulant concerns",
			T2: "Use with caution if at all",
			T3: "May stimulate uterus - best to avoid",
		},
		Sources: []string{"Traditional medicine guidelines", "MotherToBaby - consult provider for herbs"},
	},

	"hot dogs": {
		Item:        "Hot Dogs",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Like deli meat, hot dogs can harbor listeria. Heat until steaming to make them safe.",
		DirectRisks: []string{
			"Listeria can cause miscarriage, stillbirth, or newborn infection",
		},
		GeneralRisks: []string{
			"High sodium and nitrates",
			"Listeria risk applies to everyone",
		},
		Recommendations: []string{
			"Heat until steaming hot (165°F)",
			"Microwave for 30 seconds or grill thoroughly",
			"Don't eat cold straight from package",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"CDC", "FDA", "ACOG"},
	},

	"mayonnaise": {
		Item:         "Mayonnaise",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Commercial mayonnaise is safe - it's made with pasteurized eggs and acidic enough to prevent bacteria.",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Commercial mayo is safe (pasteurized eggs)",
			"Avoid homemade mayo made with raw eggs",
			"Restaurant mayo is typically commercial",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"FDA", "USDA"},
	},

	"sprouts": {
		Item:        "Sprouts (Alfalfa, Bean, etc.)",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Raw sprouts are high-risk for bacteria. Even \"clean\" sprouts can harbor salmonella or E. coli in the seeds.",
		DirectRisks: []string{
			"Bacteria can cause severe illness leading to pregnancy complications",
		},
		GeneralRisks: []string{
			"Sprouts are a common source of food poisoning outbreaks",
		},
		Recommendations: []string{
			"Avoid raw sprouts entirely during pregnancy",
			"Cooking thoroughly kills bacteria (add to stir-fry)",
			"This includes alfalfa, clover, mung bean, radish sprouts",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Avoid raw sprouts throughout pregnancy."},
		Sources:        []string{"FDA", "CDC"},
	},

	"soda": {
		Item:        "Soda / Soft Drinks",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Occasional soda is fine. Main concerns are caffeine, sugar, and empty calories.",
		DirectRisks: []string{
			"Caffeinated sodas count toward 200mg daily caffeine limit",
		},
		GeneralRisks: []string{
			"High sugar content",
			"May worsen heartburn and nausea",
		},
		Recommendations: []string{
			"Track caffeine (Coke has ~34mg, Mountain Dew ~54mg per 12oz)",
			"Consider caffeine-free versions",
			"Limit sugary drinks for healthy weight gain",
			"Diet soda with artificial sweeteners is considered safe in moderation",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same considerations throughout pregnancy."},
		Sources:        []string{"ACOG", "FDA"},
	},

	"artificial sweeteners": {
		Item:        "Artificial Sweeteners",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Most artificial sweeteners are considered safe during pregnancy in moderate amounts.",
		DirectRisks: []string{
			"Saccharin crosses placenta - some advise limiting (though risk is theoretical)",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Safe: Aspartame (Equal), Sucralose (Splenda), Stevia, Acesulfame-K",
			"Use in moderation as part of balanced diet",
			"Saccharin (Sweet'N Low) - some doctors suggest limiting",
			"Avoid if you have PKU (aspartame contraindicated)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe in moderation throughout pregnancy."},
		Sources:        []string{"FDA", "ACOG", "ADA"},
	},

	"spicy food": {
		Item:        "Spicy Food",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Spicy food is safe during pregnancy. It does not harm the baby or induce labor.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"May worsen heartburn (very common in pregnancy)",
			"May cause digestive discomfort",
		},
		Recommendations: []string{
			"Safe to eat if you enjoy it",
			"Will not harm baby or induce labor (this is a myth)",
			"If experiencing heartburn, you may want to reduce spicy foods",
			"Baby can taste flavors in amniotic fluid - exposure may reduce picky eating later!",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "May worsen nausea for some",
			T2: "Generally fine",
			T3: "May worsen heartburn which is common in third trimester",
		},
		Sources: []string{"ACOG", "Expecting Better"},
	},

	"salicylic acid": {
		Item:        "Salicylic Acid (BHA)",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Low concentrations in face washes are generally considered safe. High concentrations or peels should be avoided.",
		DirectRisks: []string{
			"High doses of oral salicylates can cause problems, but topical absorption is minimal",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Face washes with low concentration (under 2%) are generally safe",
			"Avoid high-concentration peels",
			"Alternative: glycolic acid (AHA) is considered safer",
			"Spot treatments are low risk due to small area",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"AAD", "ACOG"},
	},

	"benzoyl peroxide": {
		Item:        "Benzoyl Peroxide",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Considered safe for pregnancy. Only about 5% is absorbed through skin, and it's quickly cleared from the body.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Can cause skin dryness and irritation",
		},
		Recommendations: []string{
			"Use lower concentrations (2.5-5%) to minimize irritation",
			"Good option for pregnancy-safe acne treatment",
			"Can combine with azelaic acid for better results",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "MotherToBaby"},
	},

	"sunscreen": {
		Item:         "Sunscreen",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Sunscreen is safe and important during pregnancy! Pregnancy can cause skin darkening (melasma).",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Mineral sunscreens (zinc oxide, titanium dioxide) sit on top of skin",
			"Chemical sunscreens are also considered safe",
			"SPF 30+ recommended",
			"Especially important due to pregnancy melasma risk",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe and recommended throughout pregnancy."},
		Sources:        []string{"AAD", "ACOG"},
	},

	"niacinamide": {
		Item:         "Niacinamide (Vitamin B3)",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Niacinamide is one of the safest skincare actives during pregnancy. Great retinol alternative!",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Safe pregnancy skincare ingredient",
			"Helps with acne, pigmentation, fine lines",
			"Good retinol alternative during pregnancy",
			"Can combine with hyaluronic acid and vitamin C",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "MotherToBaby"},
	},

	"vitamin c serum": {
		Item:        "Vitamin C Serum",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Vitamin C serums are safe and beneficial during pregnancy. Helps with pigmentation.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"May cause irritation for sensitive skin",
		},
		Recommendations: []string{
			"Safe and recommended during pregnancy",
			"Helps prevent/treat melasma (pregnancy mask)",
			"Look for L-ascorbic acid or vitamin C derivatives",
			"Can combine with sunscreen for best results",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "ACOG"},
	},

	"hyaluronic acid": {
		Item:         "Hyaluronic Acid",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Hyaluronic acid is completely safe during pregnancy. It's naturally found in your body.",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Completely safe - naturally occurs in your body",
			"Great for hydration during pregnancy",
			"Safe in serums, moisturizers, and lip products",
			"Injectable HA fillers should wait until after pregnancy",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "MotherToBaby"},
	},

	"glycolic acid": {
		Item:        "Glycolic Acid (AHA)",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Low-concentration glycolic acid is considered safer than salicylic acid during pregnancy.",
		DirectRisks: []string{
			"Very high concentration peels should be avoided",
		},
		GeneralRisks: []string{
			"May increase sun sensitivity",
		},
		Recommendations: []string{
			"Low concentrations (under 10%) in cleansers/toners are safe",
			"Avoid professional high-concentration peels",
			"Use sunscreen as AHAs increase sun sensitivity",
			"Good alternative to salicylic acid for exfoliation",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe in low concentrations throughout pregnancy."},
		Sources:        []string{"AAD", "ACOG"},
	},

	"azelaic acid": {
		Item:        "Azelaic Acid",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Azelaic acid is pregnancy-safe and can be prescribed by dermatologists for acne or melasma.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"May cause mild irritation",
		},
		Recommendations: []string{
			"Considered safe during pregnancy",
			"Prescription strength available for acne",
			"Good for treating melasma (pregnancy mask)",
			"Can combine with niacinamide",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "FDA Category B"},
	},

	"hair dye": {
		Item:        "Hair Dye",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Hair dye is generally considered safe during pregnancy. Very little is absorbed through the scalp.",
		DirectRisks: []string{
			"Minimal absorption through scalp - no proven harm",
		},
		GeneralRisks: []string{
			"Strong fumes may cause nausea",
			"Hormones may affect how color takes",
		},
		Recommendations: []string{
			"Wait until after first trimester if you want to be extra cautious",
			"Use in well-ventilated area",
			"Consider highlights/balayage (doesn't touch scalp)",
			"Vegetable-based dyes are an alternative",
			"Wear gloves to minimize skin contact",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Some choose to wait, but no proven risk",
			T2: "Generally considered safe",
			T3: "Same precautions",
		},
		Sources: []string{"ACOG", "AAD", "MotherToBaby"},
	},

	"nail polish": {
		Item:        "Nail Polish / Manicures",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Occasional nail polish use is safe. The main concern is ventilation and fumes.",
		DirectRisks: []string{
			"No proven risk from occasional use",
		},
		GeneralRisks: []string{
			"Fumes may cause nausea or headaches",
			"Some contain chemicals like formaldehyde, toluene",
		},
		Recommendations: []string{
			"Use in well-ventilated area",
			"Look for \"3-free\" or \"5-free\" polishes (fewer harsh chemicals)",
			"Gel/acrylic nails are also considered safe occasionally",
			"Nail salon workers with daily exposure should take precautions",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy with good ventilation."},
		Sources:        []string{"ACOG", "MotherToBaby"},
	},

	"botox": {
		Item:        "Botox / Fillers",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Botox and fillers haven't been studied in pregnancy. Best to avoid until after pregnancy.",
		DirectRisks: []string{
			"No safety data - effects on fetus unknown",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Avoid during pregnancy and breastfeeding",
			"If you had Botox before knowing you were pregnant, don't panic",
			"Resume after pregnancy/breastfeeding if desired",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Avoid throughout pregnancy."},
		Sources:        []string{"ACOG", "AAD"},
	},

	"self tanner": {
		Item:        "Self Tanner / Spray Tan",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Self-tanners are considered safe as the active ingredient (DHA) doesn't penetrate beyond the outer skin layer.",
		DirectRisks: []string{
			"DHA doesn't absorb past outer skin layer",
		},
		GeneralRisks: []string{
			"Spray tan booths - avoid inhaling fumes",
		},
		Recommendations: []string{
			"Lotions and creams are safest",
			"For spray tans, protect eyes, nose, mouth from fumes",
			"Avoid tanning beds (UV radiation risk)",
			"Preferable to sun tanning or tanning beds",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"AAD", "MotherToBaby"},
	},

	"teeth whitening": {
		Item:        "Teeth Whitening",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Limited research on teeth whitening during pregnancy. Most dentists recommend waiting.",
		DirectRisks: []string{
			"Peroxide absorption unknown during pregnancy",
		},
		GeneralRisks: []string{
			"Gum sensitivity may be increased during pregnancy",
		},
		Recommendations: []string{
			"Most dentists suggest waiting until after pregnancy",
			"Whitening toothpaste is considered safe",
			"Focus on dental hygiene - cleanings are important during pregnancy",
			"If you whitened before knowing, no need to worry",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Best to wait until after pregnancy."},
		Sources:        []string{"ADA", "ACOG"},
	},

	"massage": {
		Item:        "Massage / Prenatal Massage",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Massage is safe and beneficial during pregnancy. Just avoid deep pressure on abdomen.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Some pressure points traditionally avoided (no proven risk)",
		},
		Recommendations: []string{
			"Prenatal massage is safe after first trimester",
			"Find a therapist trained in prenatal massage",
			"Avoid lying flat on back after 20 weeks - side-lying is best",
			"Avoid deep tissue work on legs (increased clot risk in pregnancy)",
			"Can help with back pain, swelling, stress",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Some therapists prefer to wait until after first trimester",
			T2: "Great time for prenatal massage",
			T3: "Very beneficial for aches and pains; helps prepare for labor",
		},
		Sources: []string{"ACOG", "American Massage Therapy Association"},
	},

	"sex": {
		Item:         "Sex / Sexual Activity",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "Sex is safe during a healthy pregnancy. The baby is protected by amniotic fluid and mucus plug.",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Safe in healthy pregnancies",
			"Baby is well-protected by amniotic fluid and mucus plug",
			"Find comfortable positions as belly grows",
			"Avoid if: placenta previa, cervical issues, preterm labor risk, broken water",
			"Orgasms may cause mild contractions (normal, not harmful)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Safe; may want to avoid if spotting or threatened miscarriage",
			T2: "Often most comfortable time - energy returns",
			T3: "Safe until water breaks; may trigger Braxton Hicks",
		},
		Sources: []string{"ACOG", "Mayo Clinic"},
	},

	"tattoo": {
		Item:        "Tattoo",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Getting tattoos during pregnancy is not recommended due to infection risk and unknown ink effects.",
		DirectRisks: []string{
			"Infection risk could affect pregnancy",
			"Tattoo ink ingredients not studied during pregnancy",
		},
		GeneralRisks: []string{
			"Hepatitis B/C risk if unsterile equipment",
		},
		Recommendations: []string{
			"Wait until after pregnancy to get new tattoos",
			"Existing tattoos are not a concern",
			"If you got a tattoo before knowing you were pregnant, risk is low",
			"Henna (natural) is considered safer for temporary designs",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Avoid throughout pregnancy."},
		Sources:        []string{"ACOG", "American Pregnancy Association"},
	},

	"swimming": {
		Item:        "Swimming",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Swimming is one of the best exercises during pregnancy! Low-impact and keeps you cool.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Slip hazard on wet surfaces",
		},
		Recommendations: []string{
			"Excellent pregnancy exercise - supports joints and keeps cool",
			"Pool chlorine is safe in normal concentrations",
			"Natural bodies of water are fine if clean",
			"Avoid very hot water (hot tubs)",
			"Great for reducing swelling and back pain",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Great for nausea and fatigue",
			T2: "Often most enjoyable time - belly isn't too big yet",
			T3: "Very beneficial - reduces pressure on joints and back",
		},
		Sources: []string{"ACOG", "CDC"},
	},

	"sleeping position": {
		Item:        "Sleep Position",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Side sleeping is recommended after 20 weeks. Back sleeping can reduce blood flow to baby.",
		DirectRisks: []string{
			"Prolonged back sleeping after 20 weeks may reduce blood flow to uterus",
			"Associated with slightly higher stillbirth risk in studies",
		},
		GeneralRisks: []string{
			"Back sleeping may cause low blood pressure, dizziness",
		},
		Recommendations: []string{
			"Left side is traditionally recommended (best blood flow)",
			"Either side is fine - left is not strictly necessary",
			"Don't panic if you wake up on your back - just roll over",
			"Use pillows between knees and under belly for comfort",
			"Slightly elevated back (wedge pillow) is also okay",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Any position is fine - uterus is still small",
			T2: "Start transitioning to side sleeping around 20 weeks",
			T3: "Side sleeping most important; most women can't comfortably back-sleep anyway",
		},
		Sources: []string{"ACOG", "Lancet Study 2019"},
	},

	"x-ray": {
		Item:        "X-Ray / Radiation",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Diagnostic X-rays (dental, chest, limbs) are generally safe. The radiation dose is very low.",
		DirectRisks: []string{
			"High radiation doses can cause birth defects (not from diagnostic X-rays)",
			"Developing organs most sensitive in first trimester",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Dental X-rays are safe with lead apron",
			"Chest/limb X-rays are safe - don't delay needed care",
			"CT scans of abdomen should be avoided unless emergency",
			"MRI (no radiation) is preferred when possible",
			"Always tell technician you're pregnant - they'll shield abdomen",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "More caution advised - organs forming",
			T2: "Low-dose X-rays safe",
			T3: "Same precautions",
		},
		Sources: []string{"ACOG", "ACR (American College of Radiology)"},
	},

	"melatonin": {
		Item:        "Melatonin",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Limited research on melatonin in pregnancy. Consult your doctor before using.",
		DirectRisks: []string{
			"Not enough research to confirm safety",
			"Melatonin is a hormone that crosses the placenta",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Consult your doctor before taking",
			"Try sleep hygiene first: dark room, no screens, consistent schedule",
			"Magnesium may help with sleep and is generally safe",
			"Pregnancy insomnia is common, especially in third trimester",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Consult doctor before use in any trimester."},
		Sources:        []string{"MotherToBaby", "ACOG"},
	},

	"benadryl": {
		Item:        "Benadryl / Diphenhydramine",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Benadryl is generally considered safe during pregnancy for allergies or sleep.",
		DirectRisks: []string{
			"No known fetal risks at normal doses",
		},
		GeneralRisks: []string{
			"Can cause drowsiness",
		},
		Recommendations: []string{
			"Considered safe for allergies and sleep",
			"One of the recommended antihistamines during pregnancy",
			"Also ingredient in some sleep aids (Unisom, ZzzQuil)",
			"Unisom (doxylamine) + B6 is approved for morning sickness",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy."},
		Sources:        []string{"ACOG", "MotherToBaby", "FDA"},
	},

	"zofran": {
		Item:        "Zofran / Ondansetron",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Zofran is commonly prescribed for severe nausea. Some studies show slight risks; discuss with doctor.",
		DirectRisks: []string{
			"Some studies suggest small increased risk of cleft palate in first trimester",
			"Other studies show no increased risk - data is mixed",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Often prescribed when other treatments fail",
			"Discuss risks and benefits with your doctor",
			"Usually reserved for severe nausea/vomiting (hyperemesis)",
			"Try B6, Unisom, ginger, and dietary changes first",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Most concern about first trimester use - discuss with doctor",
			T2: "Less concern after first trimester",
			T3: "Generally not needed; nausea usually resolved",
		},
		Sources: []string{"FDA", "ACOG", "MotherToBaby"},
	},

	"antidepressants": {
		Item:        "Antidepressants / SSRIs",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Many antidepressants can be taken during pregnancy. Untreated depression also carries risks.",
		DirectRisks: []string{
			"Some SSRIs associated with small risks (heart defects, pulmonary hypertension)",
			"Risks are generally small and must be weighed against untreated depression",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Do NOT stop medication without talking to your doctor",
			"Untreated depression/anxiety also affects pregnancy",
			"Sertraline (Zoloft) is often first choice during pregnancy",
			"Work with psychiatrist and OB together",
			"Benefits of treatment often outweigh small risks",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Some medications may need adjustment",
			T2: "Continue medication as directed",
			T3: "Some babies may have temporary adjustment symptoms after birth",
		},
		Sources: []string{"ACOG", "APA", "MotherToBaby"},
	},

	"cbd": {
		Item:        "CBD / Cannabis",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "CBD and marijuana are not recommended during pregnancy. Limited research, potential risks.",
		DirectRisks: []string{
			"THC crosses placenta and affects fetal brain development",
			"Associated with low birth weight and preterm birth",
			"CBD products often contain THC and are unregulated",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Avoid all cannabis products during pregnancy",
			"CBD products are not regulated - may contain THC",
			"For nausea, talk to doctor about safe alternatives",
			"For anxiety, discuss safe treatments with your provider",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Avoid throughout pregnancy and breastfeeding."},
		Sources:        []string{"ACOG", "FDA", "AAP"},
	},

	"essential oils": {
		Item:        "Essential Oils / Aromatherapy",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Some essential oils are safe when diluted and used aromatically. Avoid ingesting.",
		DirectRisks: []string{
			"Some oils can stimulate uterus (clary sage, rosemary)",
			"Never ingest essential oils during pregnancy",
		},
		GeneralRisks: []string{
			"Undiluted oils can cause skin reactions",
		},
		Recommendations: []string{
			"Generally safe for aromatherapy: lavender, lemon, ginger, peppermint",
			"Always dilute before skin contact",
			"Never ingest essential oils",
			"Avoid: clary sage, rosemary, cinnamon bark, juniper in first trimester",
			"Diffusing is safest method",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Be more cautious - avoid stimulating oils",
			T2: "Safe oils okay for aromatherapy",
			T3: "Clary sage sometimes used to encourage labor at term",
		},
		Sources: []string{"NAHA (National Association for Holistic Aromatherapy)", "MotherToBaby"},
	},

	"prenatal vitamins": {
		Item:        "Prenatal Vitamins",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Prenatal vitamins are recommended before, during, and after pregnancy!",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"May cause nausea if taken on empty stomach",
			"Iron can cause constipation",
		},
		Recommendations: []string{
			"Start taking before conception if possible",
			"Most important: folic acid (at least 400mcg) to prevent neural tube defects",
			"Take with food if nauseous",
			"If constipated, try gummy vitamins (less iron) and increase fiber",
			"Continue through breastfeeding",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Folic acid most critical now - neural tube forming",
			T2: "Iron becomes more important as blood volume increases",
			T3: "Continue taking; omega-3 (DHA) important for brain development",
		},
		Sources: []string{"ACOG", "CDC", "March of Dimes"},
	},

	"vitamin d": {
		Item:        "Vitamin D",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Vitamin D supplementation is often recommended during pregnancy, especially if deficient.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Very high doses (>4000 IU daily) should be doctor-supervised",
		},
		Recommendations: []string{
			"Most prenatals contain 400-600 IU",
			"Many women need additional supplementation (1000-2000 IU)",
			"Get levels checked if concerned about deficiency",
			"Important for bone health and immune function",
			"Safe sun exposure also helps",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe and often recommended throughout pregnancy."},
		Sources:        []string{"ACOG", "Endocrine Society"},
	},

	"fish oil": {
		Item:        "Fish Oil / Omega-3 / DHA",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Fish oil/DHA supplements are beneficial during pregnancy for baby's brain development.",
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Fish burps/taste - try refrigerating or taking with meals",
			"Check for mercury-tested/purified products",
		},
		Recommendations: []string{
			"DHA is important for fetal brain and eye development",
			"Look for products tested for mercury and PCBs",
			"Aim for 200-300mg DHA daily",
			"Can also get from low-mercury fish (salmon, sardines)",
			"Some prenatals include DHA",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{
			T1: "Start taking - brain development begins early",
			T2: "Continue supplementation",
			T3: "Most brain growth occurs now - DHA especially important",
		},
		Sources: []string{"ACOG", "American Academy of Pediatrics"},
	},

	"cleaning products": {
		Item:        "Cleaning Products",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Most household cleaners are safe with good ventilation. Avoid mixing products.",
		DirectRisks: []string{
			"No evidence that occasional cleaning harms pregnancy",
		},
		GeneralRisks: []string{
			"Strong fumes can cause nausea or headaches",
			"Never mix bleach with ammonia",
		},
		Recommendations: []string{
			"Use in well-ventilated areas",
			"Wear gloves to protect skin",
			"Avoid oven cleaners and drain cleaners in enclosed spaces",
			"Green/natural products are fine but not necessary",
			"Good excuse to have someone else clean!",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"ACOG", "MotherToBaby"},
	},

	"bug spray": {
		Item:         "Bug Spray / Insect Repellent",
		SafetyLevel:  apimodels.SafetyLevelSafe,
		Summary:      "EPA-registered bug sprays are safe during pregnancy and important for preventing Zika and other diseases.",
		DirectRisks:  []string{},
		GeneralRisks: []string{},
		Recommendations: []string{
			"DEET, picaridin, IR3535, and oil of lemon eucalyptus are all safe",
			"Important to use in areas with Zika, West Nile, or Lyme disease",
			"Follow label directions",
			"Apply to clothing when possible",
			"Wash off when you go indoors",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Safe throughout pregnancy - disease prevention is important."},
		Sources:        []string{"CDC", "EPA", "ACOG"},
	},

	"cat litter": {
		Item:        "Cat Litter / Toxoplasmosis",
		SafetyLevel: apimodels.SafetyLevelAvoid,
		Summary:     "Avoid changing cat litter due to toxoplasmosis risk. Keep your cat - just delegate litter duty!",
		DirectRisks: []string{
			"Toxoplasmosis can cause serious birth defects",
			"Parasite found in cat feces",
		},
		GeneralRisks: []string{},
		Recommendations: []string{
			"Have someone else change the litter box",
			"If you must do it, wear gloves and wash hands thoroughly",
			"Indoor cats are lower risk",
			"You do NOT need to get rid of your cat!",
			"Wear gloves when gardening (cats use gardens as litter boxes)",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"CDC", "ACOG"},
	},

	"paint": {
		Item:        "Paint / Painting",
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     "Painting is generally safe with good ventilation. Avoid oil-based paints and lead paint.",
		DirectRisks: []string{
			"Lead paint (pre-1978 homes) is dangerous - do not sand or remove",
			"Oil-based paints have stronger fumes",
		},
		GeneralRisks: []string{
			"Fumes can cause headaches and nausea",
		},
		Recommendations: []string{
			"Water-based (latex) paints are safest",
			"Ensure good ventilation - open windows, use fans",
			"Take frequent breaks for fresh air",
			"Avoid scraping/sanding old paint (may contain lead)",
			"Consider having someone else paint, or hire professionals",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Same precautions throughout pregnancy."},
		Sources:        []string{"ACOG", "EPA", "MotherToBaby"},
	},
}
