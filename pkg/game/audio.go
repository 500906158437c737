package game

// 音效名称
const (
	SoundStart       = "snd_start"
	SoundHit         = "snd_hit"
	SoundStarExplode = "snd_star_explode"
	SoundDie         = "snd_die"
	SoundRevive      = "snd_revive"
	SoundYouWon      = "snd_you_won"
	SoundWin         = "snd_win"
	SoundDeleteData  = "snd_delete_data"
	SoundLaser       = "snd_laser"
	SoundBossHit     = "snd_boss_hit"
	SoundBossExplode = "snd_boss_explode"
)

// 音乐名称
const (
	MusicStartScreen = "mus_start_screen"
	MusicMeh         = "mus_meh_music"
	MusicAcidCool    = "mus_acid_cool"
	MusicBossFight   = "mus_boss_fight"
)

// AudioSink 音频输出
// 模拟核心只发出命令，不关心具体播放实现
type AudioSink interface {
	PlaySound(name string)
	StopSound(name string)
	PlayMusic(name string)
	StopMusic()
}

// AudioOp 音频命令类型
type AudioOp int

const (
	OpPlaySound AudioOp = iota
	OpStopSound
	OpPlayMusic
	OpStopMusic
)

func (o AudioOp) String() string {
	switch o {
	case OpPlaySound:
		return "play"
	case OpStopSound:
		return "stop"
	case OpPlayMusic:
		return "music"
	case OpStopMusic:
		return "stop_music"
	}
	return "unknown"
}

// AudioEvent 一条已发出的音频命令
type AudioEvent struct {
	Op   AudioOp
	Name string
}

// AudioRecorder 记录所有音频命令的 AudioSink，用于无声运行和测试
type AudioRecorder struct {
	Events []AudioEvent
}

func (r *AudioRecorder) PlaySound(name string) {
	r.Events = append(r.Events, AudioEvent{OpPlaySound, name})
}

func (r *AudioRecorder) StopSound(name string) {
	r.Events = append(r.Events, AudioEvent{OpStopSound, name})
}

func (r *AudioRecorder) PlayMusic(name string) {
	r.Events = append(r.Events, AudioEvent{OpPlayMusic, name})
}

func (r *AudioRecorder) StopMusic() {
	r.Events = append(r.Events, AudioEvent{Op: OpStopMusic})
}

// Count 统计某个命令出现的次数
func (r *AudioRecorder) Count(op AudioOp, name string) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Op == op && ev.Name == name {
			n++
		}
	}
	return n
}

// Restart 停止并重新播放音效，使连续触发的同一音效从头开始
func Restart(a AudioSink, name string) {
	a.StopSound(name)
	a.PlaySound(name)
}
