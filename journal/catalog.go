package journal

// Trait is one entry of the fixed personality-trait catalog. IDs are stable;
// the client renders labels.
type Trait struct {
	ID       string
	Label    string
	Category string
}

// Trait categories, in the fixed order used for prompts and for migrating
// legacy per-category archives.
const (
	CategoryEmotion      = "emotion"
	CategoryRelationship = "relationship"
	CategoryWork         = "work"
	CategoryGrowth       = "growth"
	CategoryValues       = "values"
	CategoryHabit        = "habit"
	CategoryCognition    = "cognition"
	CategoryIdentity     = "identity"
	CategoryResilience   = "resilience"
	CategoryCreativity   = "creativity"
)

// CategoryOrder fixes iteration order everywhere a category walk must be stable.
var CategoryOrder = []string{
	CategoryEmotion,
	CategoryRelationship,
	CategoryWork,
	CategoryGrowth,
	CategoryValues,
	CategoryHabit,
	CategoryCognition,
	CategoryIdentity,
	CategoryResilience,
	CategoryCreativity,
}

// CategoryLabels maps category IDs to display labels.
var CategoryLabels = map[string]string{
	CategoryEmotion:      "감정",
	CategoryRelationship: "관계",
	CategoryWork:         "일과 성취",
	CategoryGrowth:       "성장",
	CategoryValues:       "가치관",
	CategoryHabit:        "습관과 일상",
	CategoryCognition:    "사고방식",
	CategoryIdentity:     "자기인식",
	CategoryResilience:   "회복탄력성",
	CategoryCreativity:   "창조성",
}

var traitsByCategory = map[string][]Trait{
	CategoryEmotion: {
		{ID: "emotion-deep-feeler", Label: "감정을 깊이 느끼는"},
		{ID: "emotion-namer", Label: "감정에 이름을 붙이는"},
		{ID: "emotion-slow-burner", Label: "감정이 천천히 차오르는"},
		{ID: "emotion-quick-recovery", Label: "기분 전환이 빠른"},
		{ID: "emotion-weather-sensitive", Label: "날씨에 기분이 흔들리는"},
		{ID: "emotion-music-mover", Label: "음악으로 감정을 다루는"},
		{ID: "emotion-tear-honest", Label: "눈물 앞에서 솔직한"},
		{ID: "emotion-joy-savorer", Label: "작은 기쁨을 음미하는"},
		{ID: "emotion-anger-examiner", Label: "화가 난 이유를 들여다보는"},
		{ID: "emotion-anxiety-aware", Label: "불안을 알아차리는"},
		{ID: "emotion-gratitude-finder", Label: "고마움을 잘 발견하는"},
		{ID: "emotion-nostalgic", Label: "지난 날을 자주 그리워하는"},
		{ID: "emotion-mood-writer", Label: "기분을 글로 푸는"},
		{ID: "emotion-quiet-processor", Label: "혼자 조용히 감정을 정리하는"},
		{ID: "emotion-shared-processor", Label: "말하면서 감정을 정리하는"},
		{ID: "emotion-evening-reflector", Label: "저녁에 감정이 깊어지는"},
		{ID: "emotion-morning-lightness", Label: "아침에 마음이 가벼운"},
		{ID: "emotion-empathic-absorber", Label: "남의 감정을 잘 흡수하는"},
		{ID: "emotion-boundary-keeper", Label: "감정의 경계를 지키는"},
		{ID: "emotion-laughter-healer", Label: "웃음으로 회복하는"},
		{ID: "emotion-sentimental-keeper", Label: "추억이 담긴 물건을 간직하는"},
		{ID: "emotion-calm-under-pressure", Label: "긴장 속에서도 차분한"},
		{ID: "emotion-expressive-face", Label: "감정이 얼굴에 드러나는"},
		{ID: "emotion-delayed-realizer", Label: "감정을 뒤늦게 깨닫는"},
		{ID: "emotion-small-sadness-noticer", Label: "사소한 서운함을 알아채는"},
		{ID: "emotion-excitement-planner", Label: "설렘으로 계획을 세우는"},
		{ID: "emotion-season-attuned", Label: "계절의 변화에 마음이 반응하는"},
		{ID: "emotion-comfort-giver", Label: "위로를 건넬 줄 아는"},
		{ID: "emotion-self-soother", Label: "스스로를 달랠 줄 아는"},
		{ID: "emotion-honest-discomfort", Label: "불편함을 솔직하게 말하는"},
	},
	CategoryRelationship: {
		{ID: "relationship-deep-listener", Label: "깊이 들어주는"},
		{ID: "relationship-first-greeter", Label: "먼저 인사를 건네는"},
		{ID: "relationship-memory-keeper", Label: "상대의 말을 기억하는"},
		{ID: "relationship-small-circle", Label: "좁고 깊게 사귀는"},
		{ID: "relationship-wide-circle", Label: "넓게 두루 어울리는"},
		{ID: "relationship-conflict-softener", Label: "갈등을 부드럽게 푸는"},
		{ID: "relationship-honest-apologizer", Label: "먼저 사과할 줄 아는"},
		{ID: "relationship-celebration-rememberer", Label: "기념일을 챙기는"},
		{ID: "relationship-quiet-supporter", Label: "말없이 곁을 지키는"},
		{ID: "relationship-boundary-setter", Label: "관계의 선을 지키는"},
		{ID: "relationship-reconnector", Label: "끊긴 인연을 다시 잇는"},
		{ID: "relationship-gift-thinker", Label: "선물을 고민해서 고르는"},
		{ID: "relationship-family-anchor", Label: "가족에게 마음을 쓰는"},
		{ID: "relationship-mentor-seeker", Label: "배울 사람을 찾는"},
		{ID: "relationship-mentor-giver", Label: "아는 것을 나누는"},
		{ID: "relationship-slow-opener", Label: "천천히 마음을 여는"},
		{ID: "relationship-trust-builder", Label: "약속으로 신뢰를 쌓는"},
		{ID: "relationship-space-giver", Label: "상대의 공간을 존중하는"},
		{ID: "relationship-check-in-texter", Label: "안부를 먼저 묻는"},
		{ID: "relationship-group-harmonizer", Label: "모임의 분위기를 살피는"},
		{ID: "relationship-one-on-one-preferrer", Label: "일대일 만남을 선호하는"},
		{ID: "relationship-honest-feedbacker", Label: "솔직한 의견을 건네는"},
		{ID: "relationship-forgiver", Label: "서운함을 오래 담지 않는"},
		{ID: "relationship-protective", Label: "소중한 사람을 지키려는"},
		{ID: "relationship-new-face-welcomer", Label: "새로운 사람을 반기는"},
		{ID: "relationship-deep-talker", Label: "깊은 대화를 좋아하는"},
		{ID: "relationship-humor-bridge", Label: "유머로 거리를 좁히는"},
		{ID: "relationship-help-asker", Label: "도움을 청할 줄 아는"},
		{ID: "relationship-help-offerer", Label: "도움을 먼저 내미는"},
		{ID: "relationship-goodbye-carer", Label: "헤어짐을 정성스럽게 하는"},
	},
	CategoryWork: {
		{ID: "work-deadline-keeper", Label: "마감을 지키는"},
		{ID: "work-detail-checker", Label: "꼼꼼하게 확인하는"},
		{ID: "work-big-picture", Label: "큰 그림을 그리는"},
		{ID: "work-deep-focuser", Label: "몰입해서 일하는"},
		{ID: "work-multi-juggler", Label: "여러 일을 오가며 해내는"},
		{ID: "work-morning-starter", Label: "아침에 일을 시작하는"},
		{ID: "work-night-finisher", Label: "밤에 마무리가 잘 되는"},
		{ID: "work-list-maker", Label: "할 일 목록을 만드는"},
		{ID: "work-priority-sorter", Label: "우선순위를 가리는"},
		{ID: "work-finisher", Label: "시작한 일을 끝내는"},
		{ID: "work-starter", Label: "일을 벌이는 데 주저 없는"},
		{ID: "work-quality-raiser", Label: "완성도를 높이려는"},
		{ID: "work-speed-chooser", Label: "속도를 중시하는"},
		{ID: "work-feedback-welcomer", Label: "피드백을 반기는"},
		{ID: "work-process-improver", Label: "일하는 방식을 다듬는"},
		{ID: "work-tool-explorer", Label: "새 도구를 써보는"},
		{ID: "work-documenter", Label: "기록으로 남기는"},
		{ID: "work-team-player", Label: "함께 일할 때 힘이 나는"},
		{ID: "work-solo-performer", Label: "혼자 일할 때 집중되는"},
		{ID: "work-break-taker", Label: "쉼표를 찍을 줄 아는"},
		{ID: "work-overcommit-aware", Label: "과한 약속을 경계하는"},
		{ID: "work-pride-in-craft", Label: "자기 일에 자부심을 가진"},
		{ID: "work-learning-on-job", Label: "일하며 배우는"},
		{ID: "work-responsibility-owner", Label: "책임을 끝까지 지는"},
		{ID: "work-plan-adjuster", Label: "계획을 유연하게 고치는"},
		{ID: "work-small-win-celebrator", Label: "작은 성취를 축하하는"},
		{ID: "work-risk-taker", Label: "도전적인 일을 택하는"},
		{ID: "work-steady-pacer", Label: "꾸준한 속도로 해내는"},
		{ID: "work-mentoring-colleague", Label: "동료의 성장을 돕는"},
		{ID: "work-boundary-clocker", Label: "일과 삶의 경계를 긋는"},
	},
	CategoryGrowth: {
		{ID: "growth-book-learner", Label: "책으로 배우는"},
		{ID: "growth-course-taker", Label: "강의를 찾아 듣는"},
		{ID: "growth-habit-builder", Label: "새 습관을 들이는"},
		{ID: "growth-comfort-zone-stepper", Label: "익숙함 밖으로 나가는"},
		{ID: "growth-mistake-miner", Label: "실수에서 배우는"},
		{ID: "growth-question-asker", Label: "질문을 멈추지 않는"},
		{ID: "growth-reflection-writer", Label: "돌아보며 기록하는"},
		{ID: "growth-goal-setter", Label: "목표를 세우는"},
		{ID: "growth-milestone-tracker", Label: "진척을 확인하는"},
		{ID: "growth-language-learner", Label: "새 언어에 도전하는"},
		{ID: "growth-body-trainer", Label: "몸을 단련하는"},
		{ID: "growth-mind-trainer", Label: "마음을 단련하는"},
		{ID: "growth-skill-stacker", Label: "기술을 하나씩 쌓는"},
		{ID: "growth-role-model-finder", Label: "본보기를 찾는"},
		{ID: "growth-feedback-seeker", Label: "조언을 구하는"},
		{ID: "growth-slow-steady", Label: "느려도 꾸준한"},
		{ID: "growth-retry-after-fail", Label: "실패 후 다시 시도하는"},
		{ID: "growth-curiosity-follower", Label: "호기심을 따라가는"},
		{ID: "growth-limit-tester", Label: "한계를 시험해 보는"},
		{ID: "growth-unlearner", Label: "낡은 생각을 버릴 줄 아는"},
		{ID: "growth-teaching-learner", Label: "가르치며 배우는"},
		{ID: "growth-challenge-lister", Label: "도전 목록을 가진"},
		{ID: "growth-season-reviewer", Label: "계절마다 자신을 돌아보는"},
		{ID: "growth-small-step-taker", Label: "작은 걸음을 믿는"},
		{ID: "growth-discomfort-tolerator", Label: "성장통을 견디는"},
		{ID: "growth-new-place-explorer", Label: "낯선 곳에서 배우는"},
		{ID: "growth-archive-builder", Label: "배운 것을 모아두는"},
		{ID: "growth-morning-ritualist", Label: "아침 루틴으로 성장하는"},
		{ID: "growth-self-experimenter", Label: "자신을 실험해 보는"},
		{ID: "growth-patience-practicer", Label: "기다림을 연습하는"},
	},
	CategoryValues: {
		{ID: "values-honesty-first", Label: "정직을 앞세우는"},
		{ID: "values-fairness-keeper", Label: "공정함을 지키는"},
		{ID: "values-freedom-lover", Label: "자유를 소중히 여기는"},
		{ID: "values-stability-seeker", Label: "안정을 추구하는"},
		{ID: "values-family-centered", Label: "가족을 중심에 두는"},
		{ID: "values-nature-carer", Label: "자연을 아끼는"},
		{ID: "values-minimalist", Label: "적게 소유하려는"},
		{ID: "values-generous-giver", Label: "나누는 데 아끼지 않는"},
		{ID: "values-promise-keeper", Label: "약속을 무겁게 여기는"},
		{ID: "values-quiet-conviction", Label: "조용한 소신을 가진"},
		{ID: "values-justice-speaker", Label: "옳지 않은 일에 목소리를 내는"},
		{ID: "values-tradition-respecter", Label: "전통을 존중하는"},
		{ID: "values-change-embracer", Label: "변화를 받아들이는"},
		{ID: "values-humility-holder", Label: "겸손을 잃지 않는"},
		{ID: "values-gratitude-liver", Label: "감사하며 사는"},
		{ID: "values-effort-believer", Label: "노력의 힘을 믿는"},
		{ID: "values-balance-seeker", Label: "균형을 찾는"},
		{ID: "values-meaning-over-money", Label: "의미를 돈보다 앞에 두는"},
		{ID: "values-health-prioritizer", Label: "건강을 우선하는"},
		{ID: "values-time-treasurer", Label: "시간을 귀하게 쓰는"},
		{ID: "values-animal-friend", Label: "동물을 사랑하는"},
		{ID: "values-community-carer", Label: "공동체를 생각하는"},
		{ID: "values-craftsmanship", Label: "장인정신을 가진"},
		{ID: "values-simplicity-liver", Label: "단순하게 살려는"},
		{ID: "values-loyalty-holder", Label: "의리를 지키는"},
		{ID: "values-open-mind", Label: "다른 생각에 열려 있는"},
		{ID: "values-responsibility-bearer", Label: "책임을 피하지 않는"},
		{ID: "values-peace-maker", Label: "평화를 택하는"},
		{ID: "values-authenticity-keeper", Label: "나답게 살려는"},
		{ID: "values-legacy-thinker", Label: "남길 것을 생각하는"},
	},
	CategoryHabit: {
		{ID: "habit-early-riser", Label: "일찍 일어나는"},
		{ID: "habit-night-owl", Label: "밤이 편안한"},
		{ID: "habit-walker", Label: "걷기를 좋아하는"},
		{ID: "habit-runner", Label: "달리기로 하루를 여는"},
		{ID: "habit-journal-keeper", Label: "일기를 쓰는"},
		{ID: "habit-tea-ritualist", Label: "차 한 잔의 여유를 가진"},
		{ID: "habit-coffee-starter", Label: "커피로 하루를 시작하는"},
		{ID: "habit-desk-organizer", Label: "자리를 정돈하는"},
		{ID: "habit-meal-regular", Label: "끼니를 챙기는"},
		{ID: "habit-home-cook", Label: "직접 요리하는"},
		{ID: "habit-plant-carer", Label: "식물을 돌보는"},
		{ID: "habit-stretcher", Label: "틈틈이 몸을 푸는"},
		{ID: "habit-phone-distancer", Label: "휴대폰과 거리를 두는"},
		{ID: "habit-reading-before-sleep", Label: "자기 전에 책을 읽는"},
		{ID: "habit-weekend-resetter", Label: "주말에 재정비하는"},
		{ID: "habit-budget-tracker", Label: "가계부를 쓰는"},
		{ID: "habit-photo-archivist", Label: "일상을 사진으로 남기는"},
		{ID: "habit-playlist-curator", Label: "음악으로 하루를 채우는"},
		{ID: "habit-cleaning-refresher", Label: "청소로 기분을 바꾸는"},
		{ID: "habit-sunlight-seeker", Label: "햇볕을 쬐러 나가는"},
		{ID: "habit-water-drinker", Label: "물을 자주 마시는"},
		{ID: "habit-nap-recharger", Label: "낮잠으로 충전하는"},
		{ID: "habit-slow-morning", Label: "느린 아침을 보내는"},
		{ID: "habit-routine-lover", Label: "정해진 리듬을 좋아하는"},
		{ID: "habit-spontaneity-lover", Label: "즉흥적인 하루를 즐기는"},
		{ID: "habit-memo-taker", Label: "떠오르면 바로 적는"},
		{ID: "habit-digital-detoxer", Label: "가끔 연결을 끊는"},
		{ID: "habit-neighborhood-explorer", Label: "동네 산책을 즐기는"},
		{ID: "habit-bath-unwinder", Label: "목욕으로 하루를 닫는"},
		{ID: "habit-sleep-guardian", Label: "잠을 지키는"},
	},
	CategoryCognition: {
		{ID: "cognition-analytical", Label: "따져보고 판단하는"},
		{ID: "cognition-intuitive", Label: "직감을 믿는"},
		{ID: "cognition-visual-thinker", Label: "그림으로 생각하는"},
		{ID: "cognition-verbal-thinker", Label: "말로 정리되는"},
		{ID: "cognition-slow-decider", Label: "신중하게 결정하는"},
		{ID: "cognition-fast-decider", Label: "빠르게 결단하는"},
		{ID: "cognition-pattern-spotter", Label: "패턴을 알아보는"},
		{ID: "cognition-detail-noticer", Label: "디테일을 포착하는"},
		{ID: "cognition-why-asker", Label: "이유를 파고드는"},
		{ID: "cognition-possibility-explorer", Label: "가능성을 상상하는"},
		{ID: "cognition-realist", Label: "현실을 직시하는"},
		{ID: "cognition-optimist", Label: "좋은 쪽을 먼저 보는"},
		{ID: "cognition-devils-advocate", Label: "반대 관점을 던져보는"},
		{ID: "cognition-list-organizer", Label: "목록으로 정리하는"},
		{ID: "cognition-story-connector", Label: "이야기로 연결하는"},
		{ID: "cognition-number-comfortable", Label: "숫자가 편한"},
		{ID: "cognition-metaphor-maker", Label: "비유로 이해하는"},
		{ID: "cognition-long-term-planner", Label: "멀리 내다보는"},
		{ID: "cognition-present-focuser", Label: "지금에 집중하는"},
		{ID: "cognition-second-thinker", Label: "한 번 더 생각하는"},
		{ID: "cognition-first-principles", Label: "근본부터 따지는"},
		{ID: "cognition-context-reader", Label: "맥락을 읽는"},
		{ID: "cognition-curiosity-wide", Label: "잡식성 호기심을 가진"},
		{ID: "cognition-depth-digger", Label: "한 우물을 깊이 파는"},
		{ID: "cognition-open-to-revision", Label: "생각을 고칠 줄 아는"},
		{ID: "cognition-skeptic-checker", Label: "사실을 확인하고 믿는"},
		{ID: "cognition-daydream-wanderer", Label: "공상에 잠기는"},
		{ID: "cognition-priority-clarifier", Label: "핵심을 가려내는"},
		{ID: "cognition-scenario-planner", Label: "경우의 수를 준비하는"},
		{ID: "cognition-sleep-on-it", Label: "하룻밤 묵혀 생각하는"},
	},
	CategoryIdentity: {
		{ID: "identity-self-observer", Label: "자신을 관찰하는"},
		{ID: "identity-value-knower", Label: "자기 기준이 분명한"},
		{ID: "identity-still-searching", Label: "자신을 찾아가는 중인"},
		{ID: "identity-past-reconciler", Label: "지난 자신과 화해하는"},
		{ID: "identity-strength-namer", Label: "자기 강점을 아는"},
		{ID: "identity-weakness-acknowledger", Label: "약점을 인정하는"},
		{ID: "identity-role-flexible", Label: "상황마다 다른 모습을 가진"},
		{ID: "identity-consistent-core", Label: "어디서든 한결같은"},
		{ID: "identity-alone-recharger", Label: "혼자만의 시간에 충전되는"},
		{ID: "identity-people-recharger", Label: "사람 속에서 충전되는"},
		{ID: "identity-quiet-confidence", Label: "조용한 자신감을 가진"},
		{ID: "identity-self-questioner", Label: "스스로에게 질문하는"},
		{ID: "identity-body-listener", Label: "몸의 신호를 듣는"},
		{ID: "identity-need-namer", Label: "자기 필요를 말할 줄 아는"},
		{ID: "identity-comparison-resister", Label: "비교에 휘둘리지 않으려는"},
		{ID: "identity-own-pace-keeper", Label: "자기 속도를 지키는"},
		{ID: "identity-multi-faceted", Label: "여러 얼굴을 가진"},
		{ID: "identity-history-writer", Label: "자기 역사를 기록하는"},
		{ID: "identity-future-self-talker", Label: "미래의 나와 대화하는"},
		{ID: "identity-inner-child-carer", Label: "어린 시절의 나를 돌보는"},
		{ID: "identity-taste-developer", Label: "취향을 가꾸는"},
		{ID: "identity-limit-acceptor", Label: "한계를 받아들이는"},
		{ID: "identity-pride-quiet", Label: "드러내지 않는 자부심을 가진"},
		{ID: "identity-growth-believer", Label: "변할 수 있다고 믿는"},
		{ID: "identity-emotion-owner", Label: "감정의 주인이 되려는"},
		{ID: "identity-choice-owner", Label: "선택을 자기 것으로 받아들이는"},
		{ID: "identity-story-reframer", Label: "자기 이야기를 다시 쓰는"},
		{ID: "identity-solitude-friend", Label: "고독과 친한"},
		{ID: "identity-mirror-honest", Label: "자신에게 솔직한"},
		{ID: "identity-becoming-enjoyer", Label: "되어가는 과정을 즐기는"},
	},
	CategoryResilience: {
		{ID: "resilience-bounce-back", Label: "넘어져도 일어나는"},
		{ID: "resilience-storm-rider", Label: "힘든 시기를 견디는"},
		{ID: "resilience-help-reacher", Label: "힘들 때 손을 내미는"},
		{ID: "resilience-rest-knower", Label: "멈춰야 할 때를 아는"},
		{ID: "resilience-small-joy-collector", Label: "작은 기쁨으로 버티는"},
		{ID: "resilience-humor-in-dark", Label: "어려움 속 유머를 잃지 않는"},
		{ID: "resilience-perspective-shifter", Label: "관점을 바꿔 보는"},
		{ID: "resilience-routine-anchor", Label: "루틴으로 중심을 잡는"},
		{ID: "resilience-nature-healer", Label: "자연에서 회복하는"},
		{ID: "resilience-cry-and-continue", Label: "울고 나서 다시 걷는"},
		{ID: "resilience-lesson-extractor", Label: "아픔에서 교훈을 꺼내는"},
		{ID: "resilience-boundary-protector", Label: "지칠 땐 거리를 두는"},
		{ID: "resilience-hope-holder", Label: "희망을 놓지 않는"},
		{ID: "resilience-past-survivor", Label: "이겨낸 기억을 가진"},
		{ID: "resilience-one-day-at-a-time", Label: "하루씩 건너가는"},
		{ID: "resilience-body-first", Label: "몸부터 회복시키는"},
		{ID: "resilience-talk-it-out", Label: "털어놓으며 회복하는"},
		{ID: "resilience-write-it-out", Label: "쓰면서 회복하는"},
		{ID: "resilience-slow-healer", Label: "천천히 아무는"},
		{ID: "resilience-acceptance-finder", Label: "받아들임에서 힘을 얻는"},
		{ID: "resilience-future-focuser", Label: "다음을 바라보는"},
		{ID: "resilience-gratitude-anchor", Label: "감사로 마음을 붙드는"},
		{ID: "resilience-music-refuge", Label: "음악에 기대는"},
		{ID: "resilience-faith-keeper", Label: "믿음으로 버티는"},
		{ID: "resilience-self-kindness", Label: "자신에게 너그러운"},
		{ID: "resilience-limit-respecter", Label: "무리하지 않는"},
		{ID: "resilience-restart-expert", Label: "다시 시작하는 데 익숙한"},
		{ID: "resilience-quiet-strength", Label: "조용히 단단한"},
		{ID: "resilience-support-giver", Label: "힘든 이를 일으키는"},
		{ID: "resilience-weathered-calm", Label: "풍파 뒤의 평온을 아는"},
	},
	CategoryCreativity: {
		{ID: "creativity-idea-sparker", Label: "아이디어가 샘솟는"},
		{ID: "creativity-maker", Label: "손으로 만드는"},
		{ID: "creativity-writer", Label: "글로 표현하는"},
		{ID: "creativity-drawer", Label: "그림으로 표현하는"},
		{ID: "creativity-photo-eye", Label: "사진으로 순간을 담는"},
		{ID: "creativity-music-player", Label: "음악을 연주하는"},
		{ID: "creativity-cook-inventor", Label: "요리로 실험하는"},
		{ID: "creativity-decorator", Label: "공간을 꾸미는"},
		{ID: "creativity-remixer", Label: "익숙한 것을 새롭게 조합하는"},
		{ID: "creativity-question-flipper", Label: "문제를 뒤집어 보는"},
		{ID: "creativity-collector", Label: "영감을 수집하는"},
		{ID: "creativity-notebook-scribbler", Label: "낙서로 생각을 푸는"},
		{ID: "creativity-story-teller", Label: "이야기를 지어내는"},
		{ID: "creativity-color-sensitive", Label: "색에 민감한"},
		{ID: "creativity-word-player", Label: "말놀이를 즐기는"},
		{ID: "creativity-craft-finisher", Label: "만든 것을 완성까지 끌고 가는"},
		{ID: "creativity-beauty-noticer", Label: "일상의 아름다움을 발견하는"},
		{ID: "creativity-dream-recorder", Label: "꿈을 기록하는"},
		{ID: "creativity-diy-solver", Label: "스스로 고치고 만드는"},
		{ID: "creativity-trend-bender", Label: "유행을 자기식으로 바꾸는"},
		{ID: "creativity-constraint-lover", Label: "제약 속에서 빛나는"},
		{ID: "creativity-blank-page-brave", Label: "빈 페이지를 두려워하지 않는"},
		{ID: "creativity-detail-embellisher", Label: "마지막 한 끗을 더하는"},
		{ID: "creativity-cross-pollinator", Label: "다른 분야에서 영감을 얻는"},
		{ID: "creativity-humor-creator", Label: "웃음을 만들어내는"},
		{ID: "creativity-gift-maker", Label: "마음을 담아 직접 만드는"},
		{ID: "creativity-archive-curator", Label: "좋아하는 것을 모아 엮는"},
		{ID: "creativity-improv-player", Label: "즉흥을 즐기는"},
		{ID: "creativity-quiet-artist", Label: "혼자만의 작업 시간을 가진"},
		{ID: "creativity-sharing-creator", Label: "만든 것을 나누는"},
	},
}

var traitIndex map[string]Trait

func init() {
	traitIndex = make(map[string]Trait, 300)
	for _, cat := range CategoryOrder {
		for _, t := range traitsByCategory[cat] {
			t.Category = cat
			traitIndex[t.ID] = t
		}
	}
}

// TraitByID looks up a catalog trait. Unknown IDs report ok=false; callers
// must reject model-proposed IDs that are not in the catalog.
func TraitByID(id string) (Trait, bool) {
	t, ok := traitIndex[id]
	return t, ok
}

// TraitsByCategory returns the catalog traits for one category, with Category
// populated, in declaration order.
func TraitsByCategory(category string) []Trait {
	src := traitsByCategory[category]
	out := make([]Trait, 0, len(src))
	for _, t := range src {
		t.Category = category
		out = append(out, t)
	}
	return out
}

// CatalogSize reports the number of traits in the catalog.
func CatalogSize() int {
	return len(traitIndex)
}
