package knowledge

// Nakshatra is one of the 27 lunar mansions.
type Nakshatra struct {
	Number int
	Name   string
	Lord   string
	Deity  string
	Symbol string
	Nature string
	Gana   string
}

var nakshatras = []Nakshatra{
	{1, "Aśvinī", "Ketu", "Aśvini Kumāras", "Horse head", "Light/Swift", "Deva"},
	{2, "Bharaṇī", "Venus", "Yama", "Yoni", "Fierce", "Manushya"},
	{3, "Kṛttikā", "Sun", "Agni", "Razor/Flame", "Mixed", "Rakshasa"},
	{4, "Rohiṇī", "Moon", "Brahmā", "Cart/Chariot", "Fixed", "Manushya"},
	{5, "Mṛgaśirā", "Mars", "Soma", "Deer head", "Soft", "Deva"},
	{6, "Ārdrā", "Rahu", "Rudra", "Teardrop", "Sharp", "Manushya"},
	{7, "Punarvasu", "Jupiter", "Aditi", "Bow/Quiver", "Movable", "Deva"},
	{8, "Puṣya", "Saturn", "Bṛhaspati", "Flower/Udder", "Light", "Deva"},
	{9, "Āśleṣā", "Mercury", "Sarpas", "Serpent", "Sharp", "Rakshasa"},
	{10, "Maghā", "Ketu", "Pitṛs", "Throne", "Fierce", "Rakshasa"},
	{11, "Pūrva Phālgunī", "Venus", "Bhaga", "Hammock", "Fierce", "Manushya"},
	{12, "Uttara Phālgunī", "Sun", "Aryaman", "Bed", "Fixed", "Manushya"},
	{13, "Hasta", "Moon", "Savitṛ", "Hand", "Light", "Deva"},
	{14, "Citrā", "Mars", "Tvaṣṭṛ", "Pearl", "Soft", "Rakshasa"},
	{15, "Svātī", "Rahu", "Vāyu", "Coral/Sword", "Movable", "Deva"},
	{16, "Viśākhā", "Jupiter", "Indra-Agni", "Archway", "Mixed", "Rakshasa"},
	{17, "Anurādhā", "Saturn", "Mitra", "Lotus", "Soft", "Deva"},
	{18, "Jyeṣṭhā", "Mercury", "Indra", "Earring", "Sharp", "Rakshasa"},
	{19, "Mūla", "Ketu", "Nirṛti", "Roots", "Sharp", "Rakshasa"},
	{20, "Pūrvāṣāḍhā", "Venus", "Āpas", "Fan/Tusk", "Fierce", "Manushya"},
	{21, "Uttarāṣāḍhā", "Sun", "Viśvedevas", "Tusk", "Fixed", "Manushya"},
	{22, "Śravaṇa", "Moon", "Viṣṇu", "Ear/Trident", "Movable", "Deva"},
	{23, "Dhaniṣṭhā", "Mars", "Vasus", "Drum", "Movable", "Rakshasa"},
	{24, "Śatabhiṣā", "Rahu", "Varuṇa", "Circle", "Movable", "Rakshasa"},
	{25, "Pūrva Bhādrapadā", "Jupiter", "Aja Ekapāda", "Sword/Legs", "Fierce", "Manushya"},
	{26, "Uttara Bhādrapadā", "Saturn", "Ahir Budhnya", "Twins", "Fixed", "Manushya"},
	{27, "Revatī", "Mercury", "Pūṣan", "Fish/Drum", "Soft", "Deva"},
}
