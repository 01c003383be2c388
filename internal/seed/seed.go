// Package seed holds the built-in data set the service starts with.
package seed

import (
	"time"

	"betterBiteAPI/internal/types/challenge"
	"betterBiteAPI/internal/types/notification"
	"betterBiteAPI/internal/types/recipe"
	"betterBiteAPI/internal/types/user"
)

// SeedUser carries a plain password; the user service hashes it on load.
type SeedUser struct {
	User     user.User
	Password string
}

type Data struct {
	Challenges    []challenge.Challenge
	Records       []challenge.Record
	Enrollments   []challenge.Enrollment
	Users         []SeedUser
	Tags          []recipe.Tag
	Recipes       []recipe.Recipe
	Notifications []notification.Notification
}

func mustDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func note(s string) *string { return &s }

// Load builds a fresh data set. Ids are new on every call; dates relative to
// now are used for enrollments and notifications.
func Load(now time.Time) *Data {
	d := &Data{}
	d.Challenges = challenges()
	d.Records = records(d.Challenges)
	d.Users = users()
	d.Enrollments = enrollments(d.Users, d.Challenges, now)
	d.Tags = tags()
	d.Recipes = recipes(d.Tags)
	d.Notifications = notifications(d.Users, now)
	return d
}

func challenges() []challenge.Challenge {
	defs := []challenge.Definition{
		{Name: "3L de Água por Dia", Description: "Desafio geral para manter hidratação ideal.", Category: "água", GoalType: challenge.GoalQuantity, Unit: "litros", TargetValue: 3, DurationDays: 7, Active: true},
		{Name: "1 Fruta por Dia", Description: "Introduza o hábito de consumir ao menos 1 fruta por dia.", Category: "introdução alimentar", GoalType: challenge.GoalQuantity, Unit: "vezes", TargetValue: 1, DurationDays: 7, Customizable: true, Active: true},
		{Name: "Experimente Algo Novo", Description: "Experimente um alimento diferente a cada dia por 5 dias.", Category: "introdução alimentar", GoalType: challenge.GoalBoolean, Unit: "vezes", TargetValue: 1, DurationDays: 5, Customizable: true, Active: true},
		{Name: "Reeducação com Lactose", Description: "Inclua pequenas porções de alimentos com lactose.", Category: "restrição", GoalType: challenge.GoalQuantity, Unit: "porções", TargetValue: 1, DurationDays: 5, Customizable: true, Active: true},
		{Name: "Café da Manhã Completo", Description: "Inclua 3 grupos alimentares no café da manhã.", Category: "refeições", GoalType: challenge.GoalQuantity, Unit: "vezes", TargetValue: 1, DurationDays: 7, Customizable: true, Active: true},
		{Name: "Refeição sem Ultraprocessados", Description: "Faça 1 refeição sem produtos ultraprocessados.", Category: "refeições", GoalType: challenge.GoalQuantity, Unit: "vezes", TargetValue: 1, DurationDays: 5, Customizable: true, Active: true},
		{Name: "Inclua Leguminosas", Description: "Adicione feijão, lentilha ou grão-de-bico diariamente.", Category: "introdução alimentar", GoalType: challenge.GoalQuantity, Unit: "vezes", TargetValue: 1, DurationDays: 7, Customizable: true, Active: true},
		{Name: "Coma Devagar", Description: "Leve pelo menos 20 minutos para fazer uma refeição diariamente.", Category: "bem-estar", GoalType: challenge.GoalTime, Unit: "minutos", TargetValue: 20, DurationDays: 7, Active: true},
		{Name: "Alimente-se com Cores", Description: "Monte uma refeição com alimentos de ao menos 3 cores diferentes.", Category: "refeições", GoalType: challenge.GoalBoolean, Unit: "vezes", TargetValue: 1, DurationDays: 5, Active: true},
		{Name: "Chá antes de Dormir", Description: "Inclua uma xícara de chá calmante (ex: camomila) à noite.", Category: "bem-estar", GoalType: challenge.GoalBoolean, Unit: "vezes", TargetValue: 1, DurationDays: 5, Active: true},
		{Name: "Prepare sua Própria Refeição", Description: "Cozinhe sua própria refeição pelo menos 1 vez ao dia.", Category: "refeições", GoalType: challenge.GoalQuantity, Unit: "vezes", TargetValue: 1, DurationDays: 7, Active: true},
	}

	out := make([]challenge.Challenge, 0, len(defs))
	for _, def := range defs {
		def.Cadence = challenge.CadenceDaily
		out = append(out, challenge.NewChallenge(def))
	}
	return out
}

func records(ch []challenge.Challenge) []challenge.Record {
	r := func(i int, day string, amount float64, n string) challenge.Record {
		return challenge.NewRecord(ch[i].ID, mustDay(day), amount, note(n))
	}
	return []challenge.Record{
		r(0, "2025-06-01", 1, "Copo 1"),
		r(0, "2025-06-01", 1, "Copo 2"),
		r(0, "2025-06-01", 1, "Copo 3"),

		r(0, "2025-06-02", 1, "Copo 1"),
		r(0, "2025-06-02", 0.5, "Meio copo 2"),
		r(0, "2025-06-02", 0.5, "Meio copo 3"),

		r(1, "2025-06-01", 1, "Maçã no café"),
		r(1, "2025-06-01", 1, "Banana no lanche"),
		r(1, "2025-06-02", 0, "Não comeu fruta"),

		r(2, "2025-06-01", 1, "Experimentou alimento novo"),

		r(10, "2025-06-01", 1, "Preparou almoço"),
		r(10, "2025-06-01", 1, "Preparou jantar"),
	}
}

func users() []SeedUser {
	u := func(name, email, password, birth string, g user.Gender, weight, height float64, restrictions ...string) SeedUser {
		if restrictions == nil {
			restrictions = []string{}
		}
		return SeedUser{
			User:     user.NewUser(name, email, "", mustDay(birth), g, weight, height, restrictions),
			Password: password,
		}
	}
	return []SeedUser{
		u("Beatriz Costa", "bea@example.com", "hash1", "2000-01-01", user.GenderFemale, 60, 165, "lactose"),
		u("Giovanna Melo", "gio@example.com", "hash2", "1999-02-02", user.GenderFemale, 58, 160, "gluten"),
		u("Maria Eloisa", "eloisa@example.com", "hash3", "1998-03-03", user.GenderFemale, 62, 162),
		u("Tony Ramos", "tony@example.com", "hash4", "1995-04-04", user.GenderMale, 75, 178, "frutos do mar"),
		u("Arlete Salles", "arlete@example.com", "hash5", "2001-05-05", user.GenderFemale, 55, 158, "soja"),
		u("Alexandre Nero", "alexandre@example.com", "hash6", "1997-06-06", user.GenderMale, 70, 170),
		u("Susana Vieira", "susana@example.com", "hash7", "1996-07-07", user.GenderFemale, 65, 168, "amendoim"),
	}
}

func enrollments(us []SeedUser, ch []challenge.Challenge, now time.Time) []challenge.Enrollment {
	e := func(i int, status challenge.EnrollmentStatus, progress int) challenge.Enrollment {
		en := challenge.NewEnrollment(us[i].User.ID, ch[i], now)
		en.Status = status
		en.ProgressPercent = progress
		return en
	}
	return []challenge.Enrollment{
		e(0, challenge.StatusActive, 0),
		e(1, challenge.StatusActive, 0),
		e(2, challenge.StatusComplete, 100),
		e(3, challenge.StatusFailed, 40),
		e(4, challenge.StatusActive, 25),
		e(5, challenge.StatusActive, 10),
		e(6, challenge.StatusActive, 5),
	}
}

func tags() []recipe.Tag {
	names := []string{
		"Vegetariano", "Vegano", "Sem Glúten", "Low Carb", "Rápido", "Café da Manhã",
		"Lanche", "Almoço/Jantar", "Detox", "Bebida", "Alto em Proteína",
	}
	out := make([]recipe.Tag, 0, len(names))
	for _, n := range names {
		out = append(out, recipe.NewTag(n))
	}
	return out
}

func recipes(ts []recipe.Tag) []recipe.Recipe {
	byName := make(map[string]string, len(ts))
	for _, t := range ts {
		byName[t.Name] = t.ID
	}
	ids := func(names ...string) []string {
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, byName[n])
		}
		return out
	}

	list := []recipe.Recipe{
		{Name: "Salada Tropical", Description: "Salada leve com folhas, frutas e castanhas.", ImageURL: "https://example.com/salada.jpg", Ingredients: []string{"alface", "manga", "castanha-do-pará"}, Preparation: "Misture tudo e sirva gelado.", PrepTimeMin: 10, Servings: 2, Calories: 180, Protein: 5, Fat: 10, Fiber: 3, TagIDs: ids("Vegetariano", "Vegano", "Sem Glúten", "Rápido")},
		{Name: "Omelete de Espinafre", Description: "Omelete com vegetais verdes.", ImageURL: "https://example.com/omelete.jpg", Ingredients: []string{"ovo", "espinafre", "cebola"}, Preparation: "Bata os ovos, adicione legumes e frite.", PrepTimeMin: 15, Servings: 1, Calories: 220, Protein: 14, Fat: 16, Fiber: 2, TagIDs: ids("Vegetariano", "Sem Glúten", "Low Carb", "Café da Manhã", "Alto em Proteína")},
		{Name: "Iogurte com Frutas", Description: "Lanche saudável e rápido.", ImageURL: "https://example.com/iogurte.jpg", Ingredients: []string{"iogurte natural", "morango", "banana"}, Preparation: "Misture o iogurte com as frutas picadas.", PrepTimeMin: 5, Servings: 1, Calories: 150, Protein: 6, Fat: 3, Fiber: 2, TagIDs: ids("Vegetariano", "Rápido", "Lanche", "Café da Manhã")},
		{Name: "Arroz Integral com Legumes", Description: "Refeição nutritiva e leve.", ImageURL: "https://example.com/arroz.jpg", Ingredients: []string{"arroz integral", "cenoura", "ervilha"}, Preparation: "Refogue legumes e adicione ao arroz cozido.", PrepTimeMin: 30, Servings: 3, Calories: 250, Protein: 7, Fat: 5, Fiber: 4, TagIDs: ids("Vegetariano", "Vegano", "Almoço/Jantar")},
		{Name: "Panqueca de Aveia", Description: "Panqueca saudável e sem glúten.", ImageURL: "https://example.com/panqueca.jpg", Ingredients: []string{"aveia", "banana", "ovo"}, Preparation: "Misture os ingredientes e frite.", PrepTimeMin: 20, Servings: 2, Calories: 200, Protein: 8, Fat: 6, Fiber: 3, TagIDs: ids("Vegetariano", "Sem Glúten", "Café da Manhã")},
		{Name: "Smoothie Verde", Description: "Bebida detox e energética.", ImageURL: "https://example.com/smoothie.jpg", Ingredients: []string{"couve", "maçã", "limão", "água"}, Preparation: "Bata tudo no liquidificador.", PrepTimeMin: 5, Servings: 1, Calories: 120, Protein: 2, Fat: 1, Fiber: 4, TagIDs: ids("Vegano", "Rápido", "Detox", "Bebida")},
		{Name: "Macarrão de Abobrinha", Description: "Substituto leve do macarrão tradicional.", ImageURL: "https://example.com/abobrinha.jpg", Ingredients: []string{"abobrinha", "molho de tomate", "alho"}, Preparation: "Corte a abobrinha em tiras e refogue com molho.", PrepTimeMin: 15, Servings: 2, Calories: 90, Protein: 3, Fat: 2, Fiber: 2, TagIDs: ids("Vegano", "Low Carb", "Sem Glúten", "Almoço/Jantar")},
	}

	out := make([]recipe.Recipe, 0, len(list))
	for _, r := range list {
		out = append(out, recipe.NewRecipe(r))
	}
	return out
}

func notifications(us []SeedUser, now time.Time) []notification.Notification {
	n := func(i int, text string, offset time.Duration, typ notification.NotificationType, read bool) notification.Notification {
		notif := notification.NewNotification(us[i].User.ID, text, now.Add(offset), typ)
		notif.Read = read
		return notif
	}
	return []notification.Notification{
		n(0, "Lembrete: Beba 2L de água hoje!", time.Hour, notification.TypeReminder, false),
		n(0, "Parabéns! Você completou o Desafio Sem Açúcar!", -24*time.Hour, notification.TypeNewGoal, false),
		n(1, "Alerta: Agende seu check-in do Desafio das Frutas.", 30*time.Minute, notification.TypeAlert, false),
		n(2, "Você tem uma nova meta de hidratação disponível.", -48*time.Hour, notification.TypeNewGoal, true),
		n(0, "Não esqueça de registrar seu café da manhã saudável!", 15*time.Minute, notification.TypeReminder, false),
	}
}
