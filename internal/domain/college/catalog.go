package college

// School is one curated canonical identity with the spellings that resolve to it.
// Aliases and mascots are matched after normalization, so casing and
// punctuation in this table do not matter.
type School struct {
	Name    string
	Aliases []string
	Mascots []string
}

// Catalog is the curated canonical set. Every resolver output is one of these
// names or Unknown.
var Catalog = []School{
	// SEC
	{Name: "Alabama", Aliases: []string{"bama", "alabama tuscaloosa"}, Mascots: []string{"crimson tide"}},
	{Name: "Arkansas", Aliases: []string{"arkansas fayetteville"}, Mascots: []string{"razorbacks"}},
	{Name: "Auburn", Mascots: []string{"tigers"}},
	{Name: "Florida", Aliases: []string{"uf"}, Mascots: []string{"gators"}},
	{Name: "Georgia", Aliases: []string{"uga"}, Mascots: []string{"bulldogs"}},
	{Name: "Kentucky", Aliases: []string{"uk"}, Mascots: []string{"wildcats"}},
	{Name: "LSU", Aliases: []string{"louisiana state", "louisiana st"}, Mascots: []string{"tigers"}},
	{Name: "Mississippi State", Aliases: []string{"mississippi st", "miss state", "miss st"}, Mascots: []string{"bulldogs"}},
	{Name: "Missouri", Aliases: []string{"mizzou"}, Mascots: []string{"tigers"}},
	{Name: "Ole Miss", Aliases: []string{"mississippi"}, Mascots: []string{"rebels"}},
	{Name: "Oklahoma", Aliases: []string{"ou"}, Mascots: []string{"sooners"}},
	{Name: "South Carolina", Aliases: []string{"s carolina"}, Mascots: []string{"gamecocks"}},
	{Name: "Tennessee", Aliases: []string{"tennessee knoxville"}, Mascots: []string{"volunteers", "vols"}},
	{Name: "Texas", Aliases: []string{"texas austin", "ut austin"}, Mascots: []string{"longhorns"}},
	{Name: "Texas A&M", Aliases: []string{"tamu", "texas am", "texas a and m"}, Mascots: []string{"aggies"}},
	{Name: "Vanderbilt", Aliases: []string{"vandy"}, Mascots: []string{"commodores"}},

	// Big Ten
	{Name: "Illinois", Aliases: []string{"illinois urbana champaign"}, Mascots: []string{"fighting illini", "illini"}},
	{Name: "Indiana", Aliases: []string{"indiana bloomington"}, Mascots: []string{"hoosiers"}},
	{Name: "Iowa", Mascots: []string{"hawkeyes"}},
	{Name: "Maryland", Aliases: []string{"maryland college park"}, Mascots: []string{"terrapins", "terps"}},
	{Name: "Michigan", Aliases: []string{"michigan ann arbor"}, Mascots: []string{"wolverines"}},
	{Name: "Michigan State", Aliases: []string{"michigan st"}, Mascots: []string{"spartans"}},
	{Name: "Minnesota", Mascots: []string{"golden gophers", "gophers"}},
	{Name: "Nebraska", Aliases: []string{"nebraska lincoln"}, Mascots: []string{"cornhuskers", "huskers"}},
	{Name: "Northwestern", Mascots: []string{"wildcats"}},
	{Name: "Ohio State", Aliases: []string{"ohio st", "osu"}, Mascots: []string{"buckeyes"}},
	{Name: "Oregon", Mascots: []string{"ducks"}},
	{Name: "Penn State", Aliases: []string{"penn st", "pennsylvania state"}, Mascots: []string{"nittany lions"}},
	{Name: "Purdue", Mascots: []string{"boilermakers"}},
	{Name: "Rutgers", Aliases: []string{"rutgers new brunswick"}, Mascots: []string{"scarlet knights"}},
	{Name: "UCLA", Aliases: []string{"california los angeles"}, Mascots: []string{"bruins"}},
	{Name: "USC", Aliases: []string{"southern california", "southern cal"}, Mascots: []string{"trojans"}},
	{Name: "Washington", Aliases: []string{"uw"}, Mascots: []string{"huskies"}},
	{Name: "Wisconsin", Aliases: []string{"wisconsin madison"}, Mascots: []string{"badgers"}},

	// ACC
	{Name: "Boston College", Aliases: []string{"bc"}, Mascots: []string{"eagles"}},
	{Name: "California", Aliases: []string{"cal", "california berkeley", "uc berkeley"}, Mascots: []string{"golden bears"}},
	{Name: "Clemson", Mascots: []string{"tigers"}},
	{Name: "Duke", Mascots: []string{"blue devils"}},
	{Name: "Florida State", Aliases: []string{"florida st", "fsu"}, Mascots: []string{"seminoles", "noles"}},
	{Name: "Georgia Tech", Aliases: []string{"georgia institute technology", "ga tech"}, Mascots: []string{"yellow jackets"}},
	{Name: "Louisville", Mascots: []string{"cardinals"}},
	{Name: "Miami (FL)", Aliases: []string{"miami", "miami fl", "miami florida", "miami fla"}, Mascots: []string{"hurricanes"}},
	{Name: "NC State", Aliases: []string{"north carolina state", "north carolina st", "n c state"}, Mascots: []string{"wolfpack"}},
	{Name: "North Carolina", Aliases: []string{"unc", "north carolina chapel hill"}, Mascots: []string{"tar heels"}},
	{Name: "Pittsburgh", Aliases: []string{"pitt"}, Mascots: []string{"panthers"}},
	{Name: "SMU", Aliases: []string{"southern methodist"}, Mascots: []string{"mustangs"}},
	{Name: "Stanford", Mascots: []string{"cardinal"}},
	{Name: "Syracuse", Mascots: []string{"orange"}},
	{Name: "Virginia", Aliases: []string{"uva"}, Mascots: []string{"cavaliers"}},
	{Name: "Virginia Tech", Aliases: []string{"vt", "virginia polytechnic institute"}, Mascots: []string{"hokies"}},
	{Name: "Wake Forest", Mascots: []string{"demon deacons"}},

	// Big 12
	{Name: "Arizona", Mascots: []string{"wildcats"}},
	{Name: "Arizona State", Aliases: []string{"arizona st", "asu"}, Mascots: []string{"sun devils"}},
	{Name: "Baylor", Mascots: []string{"bears"}},
	{Name: "BYU", Aliases: []string{"brigham young"}, Mascots: []string{"cougars"}},
	{Name: "Cincinnati", Mascots: []string{"bearcats"}},
	{Name: "Colorado", Aliases: []string{"colorado boulder"}, Mascots: []string{"buffaloes", "buffs"}},
	{Name: "Houston", Mascots: []string{"cougars"}},
	{Name: "Iowa State", Aliases: []string{"iowa st"}, Mascots: []string{"cyclones"}},
	{Name: "Kansas", Mascots: []string{"jayhawks"}},
	{Name: "Kansas State", Aliases: []string{"kansas st", "k state"}, Mascots: []string{"wildcats"}},
	{Name: "Oklahoma State", Aliases: []string{"oklahoma st", "okla state"}, Mascots: []string{"cowboys"}},
	{Name: "TCU", Aliases: []string{"texas christian"}, Mascots: []string{"horned frogs"}},
	{Name: "Texas Tech", Aliases: []string{"ttu"}, Mascots: []string{"red raiders"}},
	{Name: "UCF", Aliases: []string{"central florida"}, Mascots: []string{"knights", "golden knights"}},
	{Name: "Utah", Mascots: []string{"utes"}},
	{Name: "West Virginia", Aliases: []string{"wvu"}, Mascots: []string{"mountaineers"}},

	// Pac-12 remainder and independents
	{Name: "Notre Dame", Aliases: []string{"notre dame du lac"}, Mascots: []string{"fighting irish"}},
	{Name: "Oregon State", Aliases: []string{"oregon st"}, Mascots: []string{"beavers"}},
	{Name: "Washington State", Aliases: []string{"washington st", "wazzu"}, Mascots: []string{"cougars"}},
	{Name: "Army", Aliases: []string{"army west point", "united states military academy"}, Mascots: []string{"black knights"}},
	{Name: "Navy", Aliases: []string{"united states naval academy"}, Mascots: []string{"midshipmen"}},
	{Name: "UConn", Aliases: []string{"connecticut"}, Mascots: []string{"huskies"}},
	{Name: "UMass", Aliases: []string{"massachusetts"}, Mascots: []string{"minutemen"}},

	// Group of Five
	{Name: "Air Force", Aliases: []string{"air force academy"}, Mascots: []string{"falcons"}},
	{Name: "Akron", Mascots: []string{"zips"}},
	{Name: "Appalachian State", Aliases: []string{"appalachian st", "app state"}, Mascots: []string{"mountaineers"}},
	{Name: "Arkansas State", Aliases: []string{"arkansas st"}, Mascots: []string{"red wolves"}},
	{Name: "Ball State", Aliases: []string{"ball st"}, Mascots: []string{"cardinals"}},
	{Name: "Boise State", Aliases: []string{"boise st"}, Mascots: []string{"broncos"}},
	{Name: "Bowling Green", Aliases: []string{"bowling green state"}, Mascots: []string{"falcons"}},
	{Name: "Buffalo", Mascots: []string{"bulls"}},
	{Name: "Central Michigan", Aliases: []string{"c michigan"}, Mascots: []string{"chippewas"}},
	{Name: "Charlotte", Aliases: []string{"north carolina charlotte"}, Mascots: []string{"49ers"}},
	{Name: "Coastal Carolina", Mascots: []string{"chanticleers"}},
	{Name: "Colorado State", Aliases: []string{"colorado st"}, Mascots: []string{"rams"}},
	{Name: "East Carolina", Aliases: []string{"ecu"}, Mascots: []string{"pirates"}},
	{Name: "Eastern Michigan", Aliases: []string{"e michigan"}, Mascots: []string{"eagles"}},
	{Name: "FIU", Aliases: []string{"florida international"}, Mascots: []string{"panthers"}},
	{Name: "Florida Atlantic", Aliases: []string{"fau"}, Mascots: []string{"owls"}},
	{Name: "Fresno State", Aliases: []string{"fresno st"}, Mascots: []string{"bulldogs"}},
	{Name: "Georgia Southern", Mascots: []string{"eagles"}},
	{Name: "Georgia State", Aliases: []string{"georgia st"}, Mascots: []string{"panthers"}},
	{Name: "Hawaii", Mascots: []string{"rainbow warriors", "warriors"}},
	{Name: "James Madison", Aliases: []string{"jmu"}, Mascots: []string{"dukes"}},
	{Name: "Kent State", Aliases: []string{"kent st"}, Mascots: []string{"golden flashes"}},
	{Name: "Liberty", Mascots: []string{"flames"}},
	{Name: "Louisiana", Aliases: []string{"louisiana lafayette", "ul lafayette", "ull"}, Mascots: []string{"ragin cajuns"}},
	{Name: "Louisiana Tech", Aliases: []string{"la tech"}, Mascots: []string{"bulldogs"}},
	{Name: "Marshall", Mascots: []string{"thundering herd"}},
	{Name: "Memphis", Mascots: []string{"tigers"}},
	{Name: "Miami (OH)", Aliases: []string{"miami oh", "miami ohio"}, Mascots: []string{"redhawks"}},
	{Name: "Middle Tennessee", Aliases: []string{"middle tennessee state", "mtsu"}, Mascots: []string{"blue raiders"}},
	{Name: "Nevada", Aliases: []string{"nevada reno"}, Mascots: []string{"wolf pack"}},
	{Name: "New Mexico", Mascots: []string{"lobos"}},
	{Name: "North Texas", Aliases: []string{"unt"}, Mascots: []string{"mean green"}},
	{Name: "Northern Illinois", Aliases: []string{"niu", "n illinois"}, Mascots: []string{"huskies"}},
	{Name: "Ohio", Aliases: []string{"ohio u"}, Mascots: []string{"bobcats"}},
	{Name: "Old Dominion", Aliases: []string{"odu"}, Mascots: []string{"monarchs"}},
	{Name: "Rice", Mascots: []string{"owls"}},
	{Name: "San Diego State", Aliases: []string{"san diego st", "sdsu"}, Mascots: []string{"aztecs"}},
	{Name: "San Jose State", Aliases: []string{"san jose st", "sjsu"}, Mascots: []string{"spartans"}},
	{Name: "South Alabama", Mascots: []string{"jaguars"}},
	{Name: "South Florida", Aliases: []string{"usf"}, Mascots: []string{"bulls"}},
	{Name: "Southern Miss", Aliases: []string{"southern mississippi"}, Mascots: []string{"golden eagles"}},
	{Name: "Temple", Mascots: []string{"owls"}},
	{Name: "Toledo", Mascots: []string{"rockets"}},
	{Name: "Troy", Aliases: []string{"troy state"}, Mascots: []string{"trojans"}},
	{Name: "Tulane", Mascots: []string{"green wave"}},
	{Name: "Tulsa", Mascots: []string{"golden hurricane"}},
	{Name: "UAB", Aliases: []string{"alabama birmingham"}, Mascots: []string{"blazers"}},
	{Name: "UNLV", Aliases: []string{"nevada las vegas"}, Mascots: []string{"rebels"}},
	{Name: "UTEP", Aliases: []string{"texas el paso"}, Mascots: []string{"miners"}},
	{Name: "UTSA", Aliases: []string{"texas san antonio"}, Mascots: []string{"roadrunners"}},
	{Name: "Utah State", Aliases: []string{"utah st"}, Mascots: []string{"aggies"}},
	{Name: "Western Kentucky", Aliases: []string{"wku"}, Mascots: []string{"hilltoppers"}},
	{Name: "Western Michigan", Aliases: []string{"w michigan", "wmu"}, Mascots: []string{"broncos"}},
	{Name: "Wyoming", Mascots: []string{"cowboys"}},

	// FCS and smaller programs with a steady NFL pipeline
	{Name: "Delaware", Mascots: []string{"blue hens"}},
	{Name: "Eastern Washington", Aliases: []string{"e washington"}, Mascots: []string{"eagles"}},
	{Name: "Harvard", Mascots: []string{"crimson"}},
	{Name: "Illinois State", Aliases: []string{"illinois st"}, Mascots: []string{"redbirds"}},
	{Name: "Jackson State", Aliases: []string{"jackson st"}, Mascots: []string{"tigers"}},
	{Name: "Montana", Mascots: []string{"grizzlies"}},
	{Name: "Montana State", Aliases: []string{"montana st"}, Mascots: []string{"bobcats"}},
	{Name: "North Dakota State", Aliases: []string{"north dakota st", "ndsu"}, Mascots: []string{"bison"}},
	{Name: "Northern Iowa", Aliases: []string{"uni"}, Mascots: []string{"panthers"}},
	{Name: "South Dakota State", Aliases: []string{"south dakota st", "sdsu jackrabbits"}, Mascots: []string{"jackrabbits"}},
	{Name: "Tennessee State", Aliases: []string{"tennessee st"}, Mascots: []string{"tigers"}},
	{Name: "Youngstown State", Aliases: []string{"youngstown st"}, Mascots: []string{"penguins"}},
}
