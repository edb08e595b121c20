package params

import "github.com/instabio/bioforge/internal/types"

// curatedBios are the handpicked per-category fallbacks shown when
// every generation attempt fails. Serving something beats serving an
// empty page.
var curatedBios = map[types.Category][]string{
	types.CategoryAesthetic: {
		"✨ living in my own little world ✨\n🌙 dream big, sparkle more 🌙\n💫 creating magic daily 💫",
		"🦋 soft aesthetic vibes 🦋\n🌸 pink sunsets & golden hours 🌸\n✨ finding beauty in simplicity ✨",
		"🤍 minimalist soul 🤍\n🌿 plant mama & coffee lover 🌿\n📚 lost in books & daydreams 📚",
		"🌙 moon child at heart 🌙\n💎 diamonds in my mind 💎\n🦋 butterfly transformations 🦋",
		"🌸 soft pink aesthetic 🌸\n☁️ head in the clouds ☁️\n✨ manifesting my dreams ✨",
		"🤎 brown girl magic 🤎\n🌻 sunflower soul 🌻\n💫 golden hour goddess 💫",
	},
	types.CategoryFunny: {
		"🤪 Professional overthinker\n🍕 Pizza is my love language\n😴 Napping is my cardio",
		"🦄 I'm not weird, I'm limited edition\n🍔 Relationship status: In love with food\n😂 My hobbies include laughing at my own jokes",
		"🤡 I put the 'fun' in dysfunctional\n🧠 My brain has too many tabs open\n☕ Coffee first, adulting second",
		"🐸 Kermit the Frog is my spirit animal\n🎭 Life's too short to be serious\n🍰 Cake is always the answer",
		"🤖 Error 404: Motivation not found\n🎪 Certified mess but make it fashion\n🌮 Taco 'bout a good time",
		"🦖 Rawr means I love you in dinosaur\n🎨 Painting my life with chaos\n🍿 Popcorn enthusiast & Netflix expert",
	},
	types.CategoryBusiness: {
		"🚀 Digital Marketing Expert\n📈 Helping brands grow online\n💼 DM for collaborations",
		"👨‍💼 CEO & Founder @YourCompany\n💡 Innovation meets execution\n🌟 Transforming ideas into reality",
		"📊 Business Consultant\n🎯 Strategic solutions for growth\n📱 Book a free consultation ⬇️",
		"🎨 Creative Director & Designer\n✨ Bringing brands to life\n🖥️ Available for projects",
		"💻 Tech Entrepreneur\n🔧 Building the future\n💬 Let's connect!",
		"📸 Professional Photographer\n🎭 Capturing moments that matter\n📅 Bookings open",
	},
	types.CategoryCool: {
		"✨ Living my best life\n🌟 Creating magic daily\n🔮 Good vibes only ✌️",
		"🎯 Chasing dreams & catching flights\n☕ Coffee addict & adventure seeker\n📸 Life through my lens",
		"🚀 Future CEO in the making\n💎 Sparkling with ambition\n✨ Watch me glow up",
		"🎨 Artist by day, dreamer by night\n🌙 Moon child with stardust dreams\n🦋 Transforming daily",
		"🎵 Music is my language\n🌻 Sunflower soul\n💃 Dancing through life",
		"📚 Bookworm & coffee lover\n🌿 Plant mom & proud\n✨ Finding magic in mundane",
	},
}

// Curated returns the fallback bios for a category, or nil for an
// unknown category. The returned slice is a copy.
func Curated(category types.Category) []string {
	defs, ok := curatedBios[category]
	if !ok {
		return nil
	}
	out := make([]string, len(defs))
	copy(out, defs)
	return out
}
